package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/peterh/liner"
	"github.com/reusee/rlm/debugs"
	"github.com/reusee/rlm/logs"
	"github.com/reusee/rlm/loops"
)

var getHistoryPath = sync.OnceValues(func() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rlm-repl-history"), nil
})

// runREPL reads tasks line by line. Every line is an independent root
// solve with its own conversation and namespace; nothing carries over
// between lines.
func runREPL(
	ctx context.Context,
	solve loops.Solve,
	tap debugs.Tap,
	logger logs.Logger,
) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetMultiLineMode(true)

	historyPath, err := getHistoryPath()
	if err != nil {
		logger.Warn("get history path error", "err", err)
	} else {
		if f, err := os.Open(historyPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	var lastAnswer string
	for {
		input, err := line.Prompt(">> ")
		if err != nil {
			switch err {
			case io.EOF, liner.ErrPromptAborted:
				return nil
			}
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		writeHistory(line, historyPath, logger)

		switch input {

		case "/quit", "/exit":
			return nil

		case "/tap":
			tap(ctx, "tap on repl", map[string]any{
				"last_answer": lastAnswer,
			})
			continue

		}

		answer, err := solve(ctx, loops.Task{
			Prompt: input,
		})
		if err != nil {
			logger.Error("solve", "error", err)
			continue
		}
		lastAnswer = answer
		fmt.Println(answer)
	}
}

func writeHistory(line *liner.State, historyPath string, logger logs.Logger) {
	if historyPath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(historyPath), 0755); err != nil {
		logger.Warn("create history dir error", "err", err)
		return
	}
	f, err := os.Create(historyPath)
	if err != nil {
		logger.Warn("create history file error", "err", err)
		return
	}
	line.WriteHistory(f)
	f.Close()
}
