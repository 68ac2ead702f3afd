// Package loader streams a CSV file into the record store.
//
// A load runs inside a single transaction: either every record in the file
// is inserted or, on the first failure, none are. Records are read lazily
// and inserted through one prepared statement.
//
// Usage:
//
//	res, err := loader.Load(ctx, "unisex_names_table.csv", "unisexDB.db", loader.WithSkipHeader())
//	if err != nil {
//	    var le *namesetl.LoadError
//	    if errors.As(err, &le) {
//	        // le.Kind, le.Record, le.Line, le.Field
//	    }
//	}
package loader
