package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/rlm/cmds"
)

var files []string

func init() {
	cmds.Define("file", cmds.Func(func(pattern string) {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			// not a pattern, take it literally
			files = append(files, pattern)
			return
		}
		for _, path := range paths {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.IsDir() {
				continue
			}
			files = append(files, path)
		}
	}).Desc("append matching files to the task payload"))
}

func fileContent(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mtype := mimetype.Detect(content)
	for t := mtype; t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return string(content), nil
		}
	}
	return "", fmt.Errorf("%s: not a text file: %s", path, mtype)
}
