package vm

// frame bundles one call frame's state with the channel pair its goroutine
// uses to yield to the host. It is the idiomatic Go analogue of the
// original Rust Pin<Box<dyn Coroutine>>: a suspension is an ordinary
// synchronous function call (suspend) from the handler's point of view,
// implemented underneath as a channel handoff that parks the goroutine.
type frame struct {
	state  *executionState
	tracer Tracer
	depth  int

	reqCh    chan Request
	replyCh  chan Reply
	finishCh chan Output
}

// suspend yields req to whatever is driving this frame's Interrupt and
// blocks until a matching Reply arrives.
func (f *frame) suspend(req Request) Reply {
	f.reqCh <- req
	return <-f.replyCh
}

// Interrupt is a paused resumable execution: either it holds a pending
// Request awaiting a Reply, or it has finished and holds a terminal Output.
type Interrupt struct {
	f *frame

	finished bool
	output   Output

	pending Request
}

// Finished reports whether execution has run to completion.
func (in *Interrupt) Finished() bool { return in.finished }

// Output returns the terminal Output. Valid only when Finished() is true.
func (in *Interrupt) Output() Output { return in.output }

// Request returns the pending suspension. Valid only when Finished() is false.
func (in *Interrupt) Request() Request { return in.pending }

// Resume supplies reply to the suspended frame and runs it until the next
// suspension or termination.
func (in *Interrupt) Resume(reply Reply) *Interrupt {
	if in.finished {
		panic("vm: Resume called on a finished Interrupt")
	}
	in.f.replyCh <- reply
	return await(in.f)
}

// await blocks until the frame's goroutine either yields a new Request or
// sends its terminal Output.
func await(f *frame) *Interrupt {
	select {
	case req := <-f.reqCh:
		return &Interrupt{f: f, pending: req}
	case out := <-f.finishCh:
		return &Interrupt{f: f, finished: true, output: out}
	}
}

// ExecuteResumable begins executing img as described by msg and returns
// the first Interrupt: either the initial suspension or, for code with no
// environment-dependent operations at all, the terminal Output directly.
func ExecuteResumable(img *CodeImage, msg *Message, rev Revision, tracer Tracer) *Interrupt {
	if tracer == nil {
		tracer = NopTracer{}
	}
	f := &frame{
		state:    newExecutionState(img, msg, rev),
		tracer:   tracer,
		depth:    int(msg.Depth),
		reqCh:    make(chan Request),
		replyCh:  make(chan Reply),
		finishCh: make(chan Output, 1),
	}
	go func() {
		f.finishCh <- runFrame(f)
	}()
	return await(f)
}

// ExecuteSync drives ExecuteResumable to completion against a synchronous
// Host, answering every suspension via ServeHost. This is what most
// callers want; ExecuteResumable/Interrupt exist for hosts that need to
// interleave suspension handling with other work (e.g. across goroutines
// or an async event loop).
func ExecuteSync(host Host, img *CodeImage, msg *Message, rev Revision, tracer Tracer) Output {
	in := ExecuteResumable(img, msg, rev, tracer)
	for !in.Finished() {
		reply := ServeHost(host, in.Request())
		in = in.Resume(reply)
	}
	return in.Output()
}
