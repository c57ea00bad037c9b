package content

// Monologue is a list of lines shown one per interaction. After the last line
// playback continues from Loop.
type Monologue struct {
	Loop  int      `yaml:"loop"`
	Lines []string `yaml:"lines"`
}

// MonologueServer hands out monologue lines and remembers how far each
// monologue has progressed.
type MonologueServer struct {
	registry *Registry
	progress map[string]int
}

func NewMonologueServer(r *Registry) *MonologueServer {
	return &MonologueServer{
		registry: r,
		progress: make(map[string]int),
	}
}

// SetRegistry swaps the content source. Progress is kept and clamped on the
// next read.
func (s *MonologueServer) SetRegistry(r *Registry) {
	s.registry = r
}

func (s *MonologueServer) NextLine(id string) (string, error) {
	m, err := s.registry.Monologue(id)
	if err != nil {
		return "", err
	}

	i := s.progress[id]
	if i >= len(m.Lines) {
		i = m.Loop
	}
	line := m.Lines[i]

	i++
	if i == len(m.Lines) {
		i = m.Loop
	}
	s.progress[id] = i
	return line, nil
}

// Reset forgets the progress of every monologue.
func (s *MonologueServer) Reset() {
	clear(s.progress)
}
