package card

import "math"

// Stage is the visible panel of the card.
type Stage int

const (
	// StageNone means no panel is visible, which happens after a transition
	// to a question that does not exist.
	StageNone Stage = iota
	StageFirst
	StageSecond
	StageThird
	StageCelebration
)

func (s Stage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageFirst:
		return "first"
	case StageSecond:
		return "second"
	case StageThird:
		return "third"
	case StageCelebration:
		return "celebration"
	default:
		return "unknown"
	}
}

var questionStages = map[string]Stage{
	"1": StageFirst,
	"2": StageSecond,
	"3": StageThird,
}

// Card is the presentation controller.
type Card struct {
	Config    *Config
	Host      Host
	Decorator *Decorator
	Meter     *LoveMeter
	Jukebox   *Jukebox

	stage Stage
}

// New creates a card controller. cfg is validated by Init, not here.
func New(cfg *Config, host Host, rng Random) (*Card, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}
	return &Card{
		Config:    cfg,
		Host:      host,
		Decorator: NewDecorator(cfg.Symbols, rng),
		stage:     StageFirst,
	}, nil
}

// Init validates the config, fills the page and wires the love meter and
// music. It is run once, when the document is ready.
func (c *Card) Init() {
	if warnings := Validate(c.Config); len(warnings) > 0 {
		c.Host.Warn("⚠️ Configuration Warnings:")
		for _, w := range warnings {
			c.Host.Warn("- " + w)
		}
	}

	c.Host.SetDocumentTitle(c.Config.DocumentTitle())
	c.Host.SetText(SlotTitle, c.Config.Heading())
	c.fillQuestions()

	if layer, ok := c.Host.Decorations(); ok {
		c.Decorator.Populate(layer)
	}

	c.setupMusic()
	c.setupMeter()
}

// fillQuestions copies the prompt texts into the page. Prompts missing from
// the config keep the page's own text.
func (c *Card) fillQuestions() {
	q := c.Config.Questions
	if q.First != nil {
		c.Host.SetText(SlotQuestion1Text, q.First.Text)
		c.Host.SetText(SlotYes1, q.First.YesButton)
		c.Host.SetText(SlotNo1, q.First.NoButton)
		c.Host.SetText(SlotSecretAnswer, q.First.SecretAnswer)
	}
	if q.Second != nil {
		c.Host.SetText(SlotQuestion2Text, q.Second.Text)
		c.Host.SetText(SlotStartText, q.Second.StartText)
		c.Host.SetText(SlotNext, q.Second.NextButton)
	}
	if q.Third != nil {
		c.Host.SetText(SlotQuestion3Text, q.Third.Text)
		c.Host.SetText(SlotYes3, q.Third.YesButton)
		c.Host.SetText(SlotNo3, q.Third.NoButton)
	}
}

func (c *Card) setupMeter() {
	view, ok := c.Host.Meter()
	if !ok {
		c.Host.Warn("Love meter elements not found. Skipping love meter init.")
		return
	}
	c.Meter = NewLoveMeter(view, c.Config.Messages, func() float64 {
		w, _ := c.Host.Viewport()
		return w
	})
	c.Meter.Init()
}

func (c *Card) setupMusic() {
	view, player, ok := c.Host.Music()
	if !ok {
		c.Host.Warn("Music controls not found. Skipping music player setup.")
		return
	}
	c.Jukebox = NewJukebox(c.Config.Music, view, player)
	c.Jukebox.Setup()
}

// Stage returns the panel last shown.
func (c *Card) Stage() Stage {
	return c.stage
}

// ShowQuestion hides every prompt and reveals question id. An unknown id
// leaves every prompt hidden.
func (c *Card) ShowQuestion(id string) {
	c.Host.HideSections()
	if !c.Host.ShowSection(QuestionSectionPrefix + id) {
		c.stage = StageNone
		return
	}
	if s, ok := questionStages[id]; ok {
		c.stage = s
	} else {
		c.stage = StageNone
	}
}

// MoveButton moves el to a random spot where it fits entirely inside the
// viewport.
func (c *Card) MoveButton(el Movable) {
	vw, vh := c.Host.Viewport()
	w, h := el.Size()
	x := c.Decorator.RNG.Between(0, math.Max(vw-w, 0))
	y := c.Decorator.RNG.Between(0, math.Max(vh-h, 0))
	el.PlaceAt(x, y)
}

// Celebrate shows the final panel and bursts hearts across the page.
func (c *Card) Celebrate() {
	c.Host.HideSections()
	if !c.Host.ShowSection(SectionCelebration) {
		return
	}
	c.stage = StageCelebration

	c.Host.SetText(SlotCelebrationTitle, c.Config.Celebration.Title)
	c.Host.SetText(SlotCelebrationMessage, c.Config.Celebration.Message)
	c.Host.SetText(SlotCelebrationEmojis, c.Config.Celebration.Emojis)

	if layer, ok := c.Host.Decorations(); ok {
		c.Decorator.Explode(layer)
	}
}
