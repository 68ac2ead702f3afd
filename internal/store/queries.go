package store

const (
	queryInsert = `INSERT INTO unisex_names (id, name, total, male_share, female_share, gap) VALUES (?, ?, ?, ?, ?, ?)`

	querySelectAll = `SELECT id, name, total, male_share, female_share, gap FROM unisex_names`

	querySelectByID = querySelectAll + ` WHERE id = ?`

	queryUpdate = `UPDATE unisex_names SET name = ?, total = ?, male_share = ?, female_share = ?, gap = ? WHERE id = ?`

	queryDelete = `DELETE FROM unisex_names WHERE id = ?`

	queryCount = `SELECT COUNT(*) FROM unisex_names`
)

// columns match querySelectAll's projection.
var columns = []string{"id", "name", "total", "male_share", "female_share", "gap"}
