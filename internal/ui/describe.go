package ui

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
)

// describeStore names the store together with its size and age so the person
// approving an overwrite can tell a scratch file from a populated one.
func describeStore(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path
	}
	return fmt.Sprintf("%s (%s, modified %s)", path,
		humanize.Bytes(uint64(info.Size())), humanize.Time(info.ModTime()))
}
