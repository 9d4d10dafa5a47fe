package parser

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/lanes/internal/game"
)

const unknownVersion = "Unknown"

// Difficulties lists the chart files in a beatmap folder.
func Difficulties(dir string) ([]game.Difficulty, error) {
	entries, err := ioutil.ReadDir(dir)
	if nil != err {
		return nil, fmt.Errorf("unable to read beatmap directory: %w", err)
	}

	difficulties := []game.Difficulty{}
	for _, entry := range entries {
		if entry.IsDir() || strings.ToLower(filepath.Ext(entry.Name())) != ".osu" {
			continue
		}
		p := filepath.Join(dir, entry.Name())
		version, err := readVersion(p)
		if nil != err {
			return nil, err
		}
		difficulties = append(difficulties, game.Difficulty{Version: version, Path: p})
	}
	return difficulties, nil
}

func readVersion(file string) (string, error) {
	f, err := os.Open(file)
	if nil != err {
		return "", fmt.Errorf("unable to open chart: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "Version:") {
			if _, v := splitKeyVal(line); v != "" {
				return v, nil
			}
			return unknownVersion, nil
		}
	}
	if err := sc.Err(); nil != err {
		return "", fmt.Errorf("unable to scan chart: %w", err)
	}
	return unknownVersion, nil
}
