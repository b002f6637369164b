package assets

import (
	"embed"
	"io/fs"
)

// DefaultFile is the name of the bundled card design file
const DefaultFile = "cards_design.txt"

//go:embed cards_design.txt
var embedded embed.FS

// FS returns the bundled asset files
func FS() fs.FS {
	return embedded
}
