package game

// Difficulty is one chart file inside a beatmap folder.
type Difficulty struct {
	Version string
	Path    string
}
