package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"goban/internal/domain/board"
	"goban/internal/grid"
	"goban/internal/usecase/diagram"
	"goban/internal/usecase/record"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	log := logger.Sugar()
	defer log.Sync()

	app := &cli.App{
		Name:      "sgfboard",
		Usage:     "replay a 19x19 game record and print the final position",
		ArgsUsage: "<record.sgf>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pdf", Usage: "also write a PDF diagram to `FILE`"},
			&cli.BoolFlag{Name: "groups", Usage: "list every group with its liberties"},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.Exit("record path is required", 2)
			}
			return run(c.App.Writer, path, c.String("pdf"), c.Bool("groups"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Errorw("sgfboard failed", "error", err)
		os.Exit(1)
	}
}

func run(out io.Writer, path, pdfPath string, listGroups bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	play, ok := record.Parse(record.SplitLines(string(data)))
	if !ok {
		return fmt.Errorf("%s: not a 19x19 game record", path)
	}
	g := play.Board.Grid

	fmt.Fprint(out, grid.Format(g))
	fmt.Fprintf(out, "moves: %d  winner: %s  captured black: %d  captured white: %d\n",
		play.Board.Moves, play.Winner, g.CapturedBlack(), g.CapturedWhite())

	if listGroups {
		for _, group := range grid.Groups(g) {
			stones := group.Sorted()
			side, _ := g.Get(stones[0])
			notation, _ := record.Standard.Notation(stones[0])
			fmt.Fprintf(out, "%s group at %s %s: %d stones, %d liberties\n",
				side, notation, stones[0], len(stones), grid.GroupLiberties(g, stones[0]).Len())
		}
		terr := grid.Territory(g)
		fmt.Fprintf(out, "territory: black %d  white %d\n", terr[board.Black].Len(), terr[board.White].Len())
	}

	if pdfPath == "" {
		return nil
	}
	f, err := os.Create(pdfPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return diagram.Render(f, g, diagram.Options{Title: path, Winner: play.Winner})
}
