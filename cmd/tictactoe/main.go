// Command tictactoe plays, benchmarks, and streams n×n tic-tac-toe games
// driven by the alpha-beta search engine.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/Aaryan94/Tic-Tac-Toe-Unbeatable-AI/analytics"
	"github.com/Aaryan94/Tic-Tac-Toe-Unbeatable-AI/bench"
	"github.com/Aaryan94/Tic-Tac-Toe-Unbeatable-AI/engine"
	"github.com/Aaryan94/Tic-Tac-Toe-Unbeatable-AI/game"
)

func main() {
	root := &cli.Command{
		Name:  "tictactoe",
		Usage: "n×n tic-tac-toe with an unbeatable alpha-beta AI",
		Commands: []*cli.Command{
			playCommand(),
			benchCommand(),
			watchCommand(),
		},
	}
	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "depth", Value: 0, Usage: "search depth limit; 0 = auto, negative = exhaustive"},
		&cli.IntFlag{Name: "time-ms", Value: 0, Usage: "soft per-move time budget in milliseconds; 0 = none"},
	}
}

func configFrom(cmd *cli.Command) engine.SearchConfig {
	config := engine.DefaultSearchConfig()
	config.MaxDepth = int(cmd.Int("depth"))
	config.TimeBudgetMs = int(cmd.Int("time-ms"))
	return config
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play a game on the console",
		Flags: append(searchFlags(),
			&cli.IntFlag{Name: "size", Value: 3, Usage: "board size n (n in a row wins)"},
			&cli.StringFlag{Name: "x", Value: "human", Usage: "X player: human, ai, or random"},
			&cli.StringFlag{Name: "o", Value: "ai", Usage: "O player: human, ai, or random"},
			&cli.IntFlag{Name: "delay-ms", Value: 500, Usage: "pause between moves"},
			&cli.IntFlag{Name: "seed", Value: 1, Usage: "seed for random players"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			config := configFrom(cmd)
			seed := int64(cmd.Int("seed"))
			x, err := makePlayer(cmd.String("x"), engine.MarkX, config, seed)
			if err != nil {
				return err
			}
			o, err := makePlayer(cmd.String("o"), engine.MarkO, config, seed+1)
			if err != nil {
				return err
			}
			settings := game.Settings{
				BoardSize: int(cmd.Int("size")),
				DelayMs:   int(cmd.Int("delay-ms")),
			}
			g, err := game.New(settings, x, o)
			if err != nil {
				return err
			}
			g.SetOutput(os.Stdout)
			_, err = g.Play()
			return err
		},
	}
}

func makePlayer(kind string, mark engine.Mark, config engine.SearchConfig, seed int64) (game.Player, error) {
	switch kind {
	case "human":
		return game.NewHumanPlayer(mark, os.Stdin, os.Stdout), nil
	case "ai":
		return game.NewAIPlayer(mark, config), nil
	case "random":
		return game.NewRandomPlayer(mark, seed), nil
	default:
		return nil, fmt.Errorf("unknown player type %q (want human, ai, or random)", kind)
	}
}

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "compare minimax, alpha-beta, and ordered alpha-beta node counts",
		Flags: append(searchFlags(),
			&cli.StringFlag{Name: "sizes", Value: "3,4", Usage: "comma-separated board sizes"},
			&cli.IntFlag{Name: "games", Value: 0, Usage: "also run this many AI-vs-AI games per size"},
			&cli.StringFlag{Name: "db", Value: "", Usage: "SQLite file to persist results to"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sizes, err := parseSizes(cmd.String("sizes"))
			if err != nil {
				return err
			}
			depth := int(cmd.Int("depth"))
			timeMs := int(cmd.Int("time-ms"))
			if depth == 0 && timeMs == 0 {
				// Plain minimax on 4×4 is intractable without a limit.
				depth = 5
			}
			comparison, err := bench.RunComparison(sizes, depth, timeMs)
			if err != nil {
				return err
			}
			printComparison(comparison)

			if games := int(cmd.Int("games")); games > 0 {
				for _, size := range sizes {
					match, err := bench.RunMatch(size, games, configFrom(cmd))
					if err != nil {
						return err
					}
					fmt.Printf("%dx%d self-play: %d games, X %d / O %d / draw %d, %d nodes, %.0f ms\n",
						size, size, match.Games, match.XWins, match.OWins, match.Draws, match.TotalNodes, match.ElapsedMs)
				}
			}

			if path := cmd.String("db"); path != "" {
				store, err := bench.OpenStore(path)
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.SaveComparison(comparison); err != nil {
					return err
				}
				fmt.Printf("saved run %s to %s\n", comparison.RunID, path)
			}
			return nil
		},
	}
}

func parseSizes(raw string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		size, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no board sizes given")
	}
	return sizes, nil
}

func printComparison(c bench.Comparison) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "size\tpos\tmode\tnodes\tcutoffs\tms\tmove\tscore")
	for _, m := range c.Results {
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%d\t%.2f\t(%d,%d)\t%.1f\n",
			m.Size, m.Position, m.Mode, m.Nodes, m.Cutoffs, m.ElapsedMs, m.Move.Row, m.Move.Col, m.Score)
	}
	w.Flush()
}

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "stream an AI-vs-AI exhibition over websocket spectators",
		Flags: append(searchFlags(),
			&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "listen address"},
			&cli.IntFlag{Name: "size", Value: 3, Usage: "board size"},
			&cli.IntFlag{Name: "delay-ms", Value: 750, Usage: "pause between moves"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			settings := game.Settings{
				BoardSize: int(cmd.Int("size")),
				DelayMs:   int(cmd.Int("delay-ms")),
			}
			server := analytics.NewServer(cmd.String("addr"), settings, configFrom(cmd))
			err := server.Run(ctx)
			// Give in-flight broadcasts a moment to drain on shutdown.
			time.Sleep(100 * time.Millisecond)
			return err
		},
	}
}
