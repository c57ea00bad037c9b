package animations

type textState int

const (
	textWaiting textState = iota
	textPlaying
	textStopped
	textDone
)

// TextAnimator reveals a string character by character.
type TextAnimator struct {
	text     []rune
	speed    float64 // characters per second
	wait     float64
	revealed float64
	state    textState
}

func NewTextAnimator(text string, charsPerSecond float64) *TextAnimator {
	a := &TextAnimator{
		text:  []rune(text),
		speed: charsPerSecond,
		state: textPlaying,
	}
	if len(a.text) == 0 {
		a.state = textDone
	}
	return a
}

// WithWaitBefore holds the reveal at zero characters for seconds.
func (a *TextAnimator) WithWaitBefore(seconds float64) *TextAnimator {
	if seconds > 0 && a.state == textPlaying {
		a.wait = seconds
		a.state = textWaiting
	}
	return a
}

func (a *TextAnimator) Text() string { return string(a.text) }

func (a *TextAnimator) IsPlaying() bool { return a.state == textPlaying }
func (a *TextAnimator) IsWaiting() bool { return a.state == textWaiting }

// Done is true once every character has been revealed.
func (a *TextAnimator) Done() bool { return a.state == textDone }

// Stop freezes the reveal at its current position. Advancing the panel
// uses Skip instead; Stop is for callers that keep the partial text on
// screen, such as a paused overlay.
func (a *TextAnimator) Stop() {
	if a.state != textDone {
		a.state = textStopped
	}
}

// Skip reveals the whole text and stops.
func (a *TextAnimator) Skip() {
	a.revealed = float64(len(a.text))
	a.state = textDone
}

// AdjustSpeed multiplies the reveal speed, mirroring Player.AdjustSpeed for
// callers that hurry text and clips together.
func (a *TextAnimator) AdjustSpeed(multiplier float64) {
	a.speed *= multiplier
}

func (a *TextAnimator) Update(dt float64) {
	switch a.state {
	case textWaiting:
		a.wait -= dt
		if a.wait > 0 {
			return
		}
		a.state = textPlaying
		dt = -a.wait
		a.wait = 0
	case textPlaying:
	default:
		return
	}

	a.revealed += dt * a.speed
	if a.revealed >= float64(len(a.text)) {
		a.revealed = float64(len(a.text))
		a.state = textDone
	}
}

// Visible is the currently revealed prefix.
func (a *TextAnimator) Visible() string {
	return string(a.text[:int(a.revealed)])
}
