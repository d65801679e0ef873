package card

// Config holds everything the card displays. Field names mirror the keys of
// the config file so a card can be written by hand in YAML or JSON.
type Config struct {
	Name        string      `json:"valentineName" yaml:"valentineName"`
	PageTitle   string      `json:"pageTitle" yaml:"pageTitle"`
	Symbols     Symbols     `json:"floatingEmojis" yaml:"floatingEmojis"`
	Questions   Questions   `json:"questions" yaml:"questions"`
	Messages    Messages    `json:"loveMessages" yaml:"loveMessages"`
	Celebration Celebration `json:"celebration" yaml:"celebration"`
	Palette     Palette     `json:"colors" yaml:"colors"`
	Motion      Motion      `json:"animations" yaml:"animations"`
	Music       *Music      `json:"music,omitempty" yaml:"music,omitempty"`
}

// Symbols are the glyphs used for floating decorations.
type Symbols struct {
	Hearts []string `json:"hearts" yaml:"hearts"`
	Bears  []string `json:"bears" yaml:"bears"`
}

// Questions holds the three prompts. A nil prompt leaves its section as
// authored in the page.
type Questions struct {
	First  *FirstQuestion  `json:"first,omitempty" yaml:"first,omitempty"`
	Second *SecondQuestion `json:"second,omitempty" yaml:"second,omitempty"`
	Third  *ThirdQuestion  `json:"third,omitempty" yaml:"third,omitempty"`
}

type FirstQuestion struct {
	Text         string `json:"text" yaml:"text"`
	YesButton    string `json:"yesBtn" yaml:"yesBtn"`
	NoButton     string `json:"noBtn" yaml:"noBtn"`
	SecretAnswer string `json:"secretAnswer" yaml:"secretAnswer"`
}

type SecondQuestion struct {
	Text       string `json:"text" yaml:"text"`
	StartText  string `json:"startText" yaml:"startText"`
	NextButton string `json:"nextBtn" yaml:"nextBtn"`
}

type ThirdQuestion struct {
	Text      string `json:"text" yaml:"text"`
	YesButton string `json:"yesBtn" yaml:"yesBtn"`
	NoButton  string `json:"noBtn" yaml:"noBtn"`
}

// Messages are shown under the love meter once it overflows.
type Messages struct {
	Extreme string `json:"extreme" yaml:"extreme"`
	High    string `json:"high" yaml:"high"`
	Normal  string `json:"normal" yaml:"normal"`
}

// Celebration is the content of the final panel.
type Celebration struct {
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
	Emojis  string `json:"emojis" yaml:"emojis"`
}

// Motion holds the animation parameters. Durations and distances are CSS
// values ("15s", "50px") and are passed through to the stylesheet.
type Motion struct {
	FloatDuration  string `json:"floatDuration" yaml:"floatDuration"`
	FloatDistance  string `json:"floatDistance" yaml:"floatDistance"`
	BounceSpeed    string `json:"bounceSpeed" yaml:"bounceSpeed"`
	ExplosionScale Number `json:"heartExplosionSize" yaml:"heartExplosionSize"`
}

// Music configures the background track.
type Music struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Autoplay  bool   `json:"autoplay" yaml:"autoplay"`
	URL       string `json:"musicUrl" yaml:"musicUrl"`
	Volume    Number `json:"volume" yaml:"volume"`
	StartText string `json:"startText" yaml:"startText"`
	StopText  string `json:"stopText" yaml:"stopText"`
}

// Default returns the sample card.
func Default() *Config {
	return &Config{
		Name:      "Mari",
		PageTitle: "Will You Be My Valentine? 💝",
		Symbols: Symbols{
			Hearts: []string{"❤️", "💖", "💝", "💗", "💓"},
			Bears:  []string{"🧸", "🐻"},
		},
		Questions: Questions{
			First: &FirstQuestion{
				Text:         "Do you like me?",
				YesButton:    "Yes",
				NoButton:     "No",
				SecretAnswer: "I don't like you, I love you! ❤️",
			},
			Second: &SecondQuestion{
				Text:       "How much do you love me?",
				StartText:  "This much!",
				NextButton: "Next ❤️",
			},
			Third: &ThirdQuestion{
				Text:      "Will you be my Valentine on February 14th, 2026? 🌹",
				YesButton: "Yes!",
				NoButton:  "No",
			},
		},
		Messages: Messages{
			Extreme: "I LOVE YOU SOOOOOOOOOOOBRANG SOBRA",
			High:    "holy moly baby that's pretty high 💝",
			Normal:  "awww I love you baby",
		},
		Celebration: Celebration{
			Title:   "YESS!!! I love you so much baby 🎉💝💖💝💓",
			Message: "Get ready for movie night + cheat meal + doing it afterwards 👀",
			Emojis:  "🎁💖🤗💝💋❤️💕",
		},
		Palette: DefaultPalette,
		Motion: Motion{
			FloatDuration:  "15s",
			FloatDistance:  "50px",
			BounceSpeed:    "0.5s",
			ExplosionScale: NumberOf(DefaultExplosionScale),
		},
		Music: &Music{
			Enabled:   true,
			Autoplay:  true,
			URL:       "music/background.mp3",
			Volume:    NumberOf(DefaultVolume),
			StartText: "🎵 Play Music",
			StopText:  "🔇 Stop Music",
		},
	}
}

// DocumentTitle returns the browser tab title.
func (c *Config) DocumentTitle() string {
	if c.PageTitle == "" {
		return DefaultPageTitle
	}
	return c.PageTitle
}

// Heading returns the greeting shown at the top of the card.
func (c *Config) Heading() string {
	return c.Name + ", my love..."
}
