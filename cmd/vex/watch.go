package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vexlang/vex/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Recompile .jsx files when they change",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"."}
		}

		w, err := watch.New(200*time.Millisecond, func(paths []string) {
			for _, p := range paths {
				if err := buildFile(p); err != nil {
					fmt.Fprintf(os.Stderr, "vex: %v\n", err)
				} else {
					fmt.Printf("compiled %s\n", p)
				}
			}
		})
		if err != nil {
			return err
		}
		for _, dir := range args {
			if err := w.Add(dir); err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		fmt.Printf("watching %v for .jsx changes\n", args)
		if err := w.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
