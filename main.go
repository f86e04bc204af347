package main

import (
	"github.com/alecthomas/kong"

	"github.com/mkarhu/metaprobe/cmd"
	"github.com/mkarhu/metaprobe/types"
)

var Version = "dev"

// CLI defines the metaprobe command tree
type CLI struct {
	Scan       cmd.ScanCmd       `cmd:"" help:"Extract metadata from media files and directories"`
	Inspect    cmd.InspectCmd    `cmd:"" help:"Show all metadata of a single file"`
	Gps        cmd.GpsCmd        `cmd:"" name:"gps" help:"List geotagged files with decimal coordinates"`
	Strip      cmd.StripCmd      `cmd:"" help:"Remove embedded metadata from image files"`
	Duplicates cmd.DuplicatesCmd `cmd:"" help:"Find media files with identical content"`
	Similar    cmd.SimilarCmd    `cmd:"" help:"Find visually similar images"`
}

func main() {
	var cli CLI
	appCtx := &types.AppContext{Version: Version}

	ctx := kong.Parse(&cli,
		kong.Name("metaprobe"),
		kong.Description("Extract, triage and strip metadata from digital media files"),
		kong.UsageOnError(),
	)

	err := ctx.Run(appCtx)
	ctx.FatalIfErrorf(err)
}
