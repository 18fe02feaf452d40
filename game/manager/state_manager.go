package manager

// StateManager keeps the tally of finished games for the current process.
// Nothing is written to disk.
type StateManager struct {
	highScore    int
	gamesPlayed  int
	scoreHistory []int
}

// maxHistory bounds the recent-scores window.
const maxHistory = 50

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0, maxHistory),
	}
}

// RecordGame registers the final score of a finished game.
func (sm *StateManager) RecordGame(score int) {
	sm.gamesPlayed++
	if score > sm.highScore {
		sm.highScore = score
	}
	if len(sm.scoreHistory) >= maxHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

// GetAverageScore averages the recent-scores window.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, s := range sm.scoreHistory {
		sum += s
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}
