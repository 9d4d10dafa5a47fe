package main

import (
	"fmt"
	"io"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/play"
	"git.lost.host/meutraa/lanes/internal/score"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
)

// The keyboard keeps the terminal raw, so lines end in \r\n.
func printResults(w io.Writer, chart *game.Chart, session *play.Session, best *score.History) {
	result := session.Result()
	fmt.Fprintf(w, "%v - %v [%v]\r\n", chart.Metadata.Artist, chart.Metadata.Title, chart.Metadata.Version)
	fmt.Fprintf(w, "%v\r\n\r\n", durafmt.Parse(session.Duration()).LimitFirstN(2))
	printResult(w, result)

	if nil == best {
		fmt.Fprint(w, "\r\nFirst play!\r\n")
		return
	}
	// Stored results are recomputed from their inputs
	previous := play.Rescore(chart, *best)
	fmt.Fprintf(w, "\r\nBest, %v\r\n", humanize.Time(best.PlayedAt))
	printResult(w, previous)
	if result.Score > previous.Score {
		fmt.Fprintf(w, "\r\nNew best by %v!\r\n", humanize.Comma(result.Score-previous.Score))
	}
}

func printResult(w io.Writer, result score.Result) {
	fmt.Fprintf(w, "%12v  %v\r\n", humanize.Comma(result.Score), result.Grade)
	fmt.Fprintf(w, "%11.2f%%  %vx\r\n", result.Accuracy, result.MaxCombo)
	for _, tier := range game.Tiers {
		fmt.Fprintf(w, "%10v: %5v\r\n", tier, result.Counts.Get(tier))
	}
}
