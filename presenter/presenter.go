// Package presenter defines the boundary between this module and the
// out-of-scope presentation primitive: window/surface creation, shader
// compilation, and GPU upload, which the driver hands off to an external
// collaborator behind a single upload_rgb(width, height, bytes) call.
//
// Presenter is shaped after a simple byte-sink driver's Write/WriteByte
// pattern, generalized from a single bit-banged pin to a 2D RGB frame
// buffer.
package presenter

// Presenter is the out-of-scope presentation primitive's contract.
type Presenter interface {
	// Init creates the presentation surface. It must be called exactly
	// once, before the first UploadRGB. Returns an error wrapping
	// dmderr.ErrPresentationInitFailed on failure (for example, a
	// required secondary display is absent).
	Init() error

	// UploadRGB hands one W*H*3 row-major RGB frame to the presentation
	// surface for blitting.
	UploadRGB(w, h int, pix []byte) error

	// ShouldClose reports whether an externally-signaled close request
	// (e.g. window-close, escape key) has been observed.
	ShouldClose() bool

	// Close tears down the presentation surface. Safe to call multiple
	// times.
	Close() error
}

// Recorder is an in-memory Presenter used by tests and by the demo
// driver's headless console mode. It never fails Init and simply retains
// the most recently uploaded frame.
type Recorder struct {
	initialized bool
	closed      bool
	closeFlag   bool

	LastW, LastH int
	LastPix      []byte
	UploadCount  int
}

// Init marks the recorder initialized.
func (r *Recorder) Init() error {
	r.initialized = true
	return nil
}

// UploadRGB copies pix into the recorder's last-frame buffer.
func (r *Recorder) UploadRGB(w, h int, pix []byte) error {
	r.LastW, r.LastH = w, h
	r.LastPix = append(r.LastPix[:0], pix...)
	r.UploadCount++
	return nil
}

// ShouldClose reports the close flag set by SetShouldClose, for tests that
// need to terminate a driver loop deterministically.
func (r *Recorder) ShouldClose() bool { return r.closeFlag }

// SetShouldClose sets the flag ShouldClose reports.
func (r *Recorder) SetShouldClose(v bool) { r.closeFlag = v }

// Close marks the recorder closed.
func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (r *Recorder) Closed() bool { return r.closed }
