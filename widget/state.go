package widget

// State is the widget's UI state. Exactly one state is rendered at a time.
// The concrete types are Idle, Loading, Success and Failure.
type State interface {
	// Kind names the state for logging.
	Kind() string
	// Terminal reports whether the state carries a dismiss control.
	Terminal() bool
	isState()
}

// Idle renders nothing; the container is empty.
type Idle struct{}

// Loading is shown from invocation until the request resolves.
type Loading struct{}

// Success lists recommendations for OriginalMovie, in server order.
type Success struct {
	OriginalMovie   string
	Recommendations []string
}

// Failure shows Message to the user.
type Failure struct {
	Message string
}

func (Idle) Kind() string    { return "idle" }
func (Loading) Kind() string { return "loading" }
func (Success) Kind() string { return "success" }
func (Failure) Kind() string { return "error" }

func (Idle) Terminal() bool    { return false }
func (Loading) Terminal() bool { return false }
func (Success) Terminal() bool { return true }
func (Failure) Terminal() bool { return true }

func (Idle) isState()    {}
func (Loading) isState() {}
func (Success) isState() {}
func (Failure) isState() {}
