package capture

import "context"

// Candidate is one plate reading proposed by a recognizer, with its
// confidence in percent (0..100).
type Candidate struct {
	Text       string
	Confidence float64
}

// Recognizer turns a single frame into zero or more plate candidates.
// Implementations are black boxes to the pipeline: the production one
// calls an ALPR HTTP service, tests substitute fakes.
type Recognizer interface {
	Recognize(ctx context.Context, frame *Frame) ([]Candidate, error)
}

// RecognizerFunc adapts a plain function to the Recognizer interface.
type RecognizerFunc func(ctx context.Context, frame *Frame) ([]Candidate, error)

func (f RecognizerFunc) Recognize(ctx context.Context, frame *Frame) ([]Candidate, error) {
	return f(ctx, frame)
}

// Stage reduces a recognizer's candidate list to a single reading per
// frame: the highest-confidence candidate at or above the configured
// threshold. No retries and no smoothing across frames happen here;
// temporal behaviour belongs to the Session.
type Stage struct {
	recognizer    Recognizer
	minConfidence float64
}

func NewStage(recognizer Recognizer, minConfidence float64) *Stage {
	return &Stage{
		recognizer:    recognizer,
		minConfidence: minConfidence,
	}
}

// Process runs the recognizer once for the given frame. ok is false
// when no candidate clears the confidence threshold, which callers
// treat as the "no text" result for that frame.
func (st *Stage) Process(ctx context.Context, frame *Frame) (text string, ok bool, err error) {
	candidates, err := st.recognizer.Recognize(ctx, frame)
	if err != nil {
		return "", false, err
	}

	best := Candidate{Confidence: -1}
	for _, c := range candidates {
		if c.Text == "" || c.Confidence < st.minConfidence {
			continue
		}
		if c.Confidence > best.Confidence {
			best = c
		}
	}

	if best.Confidence < 0 {
		return "", false, nil
	}
	return best.Text, true, nil
}
