package audio

// Player is a started playback that can be paused and released.
type Player interface {
	Pause()
	Close() error
}

// PlayerVoice is the Voice of a buffered player. Stopping releases the
// player, since every pulse gets a new one.
type PlayerVoice struct {
	P Player
}

// Stop pauses and closes the player.
func (v PlayerVoice) Stop() {
	v.P.Pause()
	_ = v.P.Close()
}
