package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "API base URL")
	flag.Parse()

	p := tea.NewProgram(NewApp(*serverURL), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "formtui: %v\n", err)
		os.Exit(1)
	}
}
