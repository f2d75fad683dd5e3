package envs

// Environment is a single simulation instance
type Environment interface {
	// Reset called at the start of each episode, returns the first observation
	Reset() ([]float64, error)
	// Step advances the simulation by one control step
	Step(action []float64) (obs []float64, reward float64, done bool, err error)
	// Size of the action vectors accepted by Step
	ActionSize() int
	// Size of the observation vectors returned by Reset and Step
	ObservationSize() int
	Close() error
}

// Options for constructing a single underlying environment instance.
// The factory fills these from a Config, overriding Seed per worker.
type Options struct {
	Task       string
	Seed       int64
	FrameSkip  int
	FromPixels bool
	PixelsOnly bool
	ImageSize  int
	NumPrevObs int
}

func (o Options) frameSkip() int {
	if o.FrameSkip < 1 {
		return 1
	}
	return o.FrameSkip
}

func (o Options) imageSize() int {
	if o.ImageSize < 1 {
		return 84
	}
	return o.ImageSize
}

// obsStacker keeps the NumPrevObs previous observations and concatenates
// them with the current one, oldest first. On reset the history is filled
// with copies of the initial observation.
type obsStacker struct {
	depth int
	buf   [][]float64
}

func newObsStacker(depth int) *obsStacker {
	if depth < 0 {
		depth = 0
	}
	return &obsStacker{depth: depth}
}

func (s *obsStacker) Reset(obs []float64) []float64 {
	s.buf = make([][]float64, s.depth+1)
	for i := range s.buf {
		s.buf[i] = obs
	}
	return s.stacked()
}

func (s *obsStacker) Push(obs []float64) []float64 {
	s.buf = append(s.buf[1:], obs)
	return s.stacked()
}

func (s *obsStacker) stacked() []float64 {
	out := make([]float64, 0, (s.depth+1)*len(s.buf[0]))
	for _, o := range s.buf {
		out = append(out, o...)
	}
	return out
}

// renderScene draws the given points (coordinates in [0,1]^2) onto a
// size x size grayscale canvas and returns it flattened row-major.
func renderScene(size int, points ...[2]float64) []float64 {
	img := make([]float64, size*size)
	for _, p := range points {
		i := int(p[1] * float64(size-1))
		j := int(p[0] * float64(size-1))
		if i < 0 {
			i = 0
		} else if i >= size {
			i = size - 1
		}
		if j < 0 {
			j = 0
		} else if j >= size {
			j = size - 1
		}
		img[i*size+j] = 1
	}
	return img
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// buildObs assembles the observation for one control step from the raw
// state vector, following the pixel flags in opts.
func buildObs(opts Options, raw []float64, scene ...[2]float64) []float64 {
	if !opts.FromPixels {
		return raw
	}
	px := renderScene(opts.imageSize(), scene...)
	if opts.PixelsOnly {
		return px
	}
	return append(px, raw...)
}

func obsSizePerStep(opts Options, rawSize int) int {
	if !opts.FromPixels {
		return rawSize
	}
	size := opts.imageSize() * opts.imageSize()
	if !opts.PixelsOnly {
		size += rawSize
	}
	return size
}
