package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbletea"

	"bench_tui/internal"
)

func main() {
	m := internal.NewModel("Counting Durations")

	p := tea.NewProgram(m, tea.WithAltScreen())

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-ticker.C:
				p.Send(internal.MsgTick{})
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
