package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/parser"
	"github.com/eiannone/keyboard"
)

// Only one key is read, so only the first ten difficulties are selectable.
const maxChoices = 10

// selectChart resolves a chart file. A beatmap directory with more than one
// difficulty asks which one to play.
func selectChart(p string, keyChannel <-chan keyboard.KeyEvent) (string, error) {
	info, err := os.Stat(p)
	if nil != err {
		return "", fmt.Errorf("unable to open chart: %w", err)
	}
	if !info.IsDir() {
		return p, nil
	}

	difficulties, err := parser.Difficulties(p)
	if nil != err {
		return "", err
	}
	switch len(difficulties) {
	case 0:
		return "", fmt.Errorf("no .osu charts in %v", p)
	case 1:
		return difficulties[0].Path, nil
	}

	printDifficulties(difficulties)
	key := <-keyChannel
	index, err := strconv.ParseInt(string(key.Rune), 10, 64)
	if nil != err || index >= int64(len(difficulties)) || index >= maxChoices {
		return "", errors.New("no difficulty selected")
	}
	return difficulties[index].Path, nil
}

func printDifficulties(difficulties []game.Difficulty) {
	for i, d := range difficulties {
		if i == maxChoices {
			fmt.Printf("    and %v more\r\n", len(difficulties)-maxChoices)
			break
		}
		fmt.Printf("%2v) %v\r\n", i, d.Version)
	}
}
