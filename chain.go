package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/go-faster/jx"

	"compvid/video"
)

// chainMain builds the descriptor chain for the default mode and dumps
// it, without touching any hardware.
func chainMain(args Chain) {
	spec, err := video.ModeNTSC40x24.Spec()
	checkf(err, "failed to resolve video mode")

	fb := video.NewFrameBuffer(spec)
	chain := video.BuildChain(spec, video.OddVSync(), video.EvenVSync(), fb)

	var w io.Writer = os.Stdout
	if args.Out != nil {
		w = args.Out
		defer args.Out.Close()
	}

	if args.JSON {
		checkf(dumpChainJSON(w, chain), "failed to write chain dump")
		return
	}
	checkf(dumpChainText(w, chain), "failed to write chain dump")
}

func dumpChainText(w io.Writer, chain video.Chain) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%5s %-17s %5s %7s %5s %5s\n",
		"idx", "region", "row", "samples", "beat", "next")
	for i, d := range chain {
		row := "-"
		if d.Region == video.RegionPixelRow {
			row = fmt.Sprint(d.Row)
		}
		fmt.Fprintf(bw, "%5d %-17s %5s %7d %5d %5d\n",
			i, d.Region, row, d.Count, d.Beat, d.Next)
	}
	return bw.Flush()
}

func dumpChainJSON(w io.Writer, chain video.Chain) error {
	var e jx.Encoder
	e.ArrStart()
	for i, d := range chain {
		e.ObjStart()
		e.Field("idx", func(e *jx.Encoder) { e.Int(i) })
		e.Field("region", func(e *jx.Encoder) { e.Str(d.Region.String()) })
		if d.Region == video.RegionPixelRow {
			e.Field("row", func(e *jx.Encoder) { e.Int(d.Row) })
		}
		if d.Region == video.RegionFieldMarker {
			e.Field("marker", func(e *jx.Encoder) { e.Str(d.Marker.String()) })
		}
		e.Field("samples", func(e *jx.Encoder) { e.Int(d.Count) })
		e.Field("beat_bytes", func(e *jx.Encoder) { e.Int(int(d.Beat)) })
		e.Field("src_inc", func(e *jx.Encoder) { e.Bool(d.SrcInc) })
		e.Field("next", func(e *jx.Encoder) { e.Int(d.Next) })
		e.ObjEnd()
	}
	e.ArrEnd()

	if _, err := w.Write(e.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
