package card

// Jukebox plays the background track and keeps the toggle label in sync.
type Jukebox struct {
	Config *Music
	View   MusicView
	Player MediaPlayer
}

// NewJukebox creates a jukebox. cfg may be nil, which disables music.
func NewJukebox(cfg *Music, view MusicView, player MediaPlayer) *Jukebox {
	return &Jukebox{Config: cfg, View: view, Player: player}
}

// Setup prepares the player. With music disabled the control is hidden and
// nothing else happens. A blocked autoplay is not retried.
func (j *Jukebox) Setup() {
	if j.Config == nil || !j.Config.Enabled {
		j.View.Hide()
		return
	}

	j.Player.SetSource(j.Config.URL)
	j.Player.SetVolume(j.Config.Volume.Or(DefaultVolume))
	j.Player.Load()

	if j.Config.Autoplay {
		j.Player.Play(
			func() { j.View.SetLabel(j.Config.StopText) },
			func() { j.View.SetLabel(j.Config.StartText) },
		)
	} else {
		j.View.SetLabel(j.Config.StartText)
	}

	j.View.OnToggle(j.Toggle)
}

// Toggle flips between playing and paused.
func (j *Jukebox) Toggle() {
	if j.Player.Paused() {
		j.Player.Play(nil, nil)
		j.View.SetLabel(j.Config.StopText)
		return
	}
	j.Player.Pause()
	j.View.SetLabel(j.Config.StartText)
}
