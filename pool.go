package prettyhttp

import "sync"

var printerPool = sync.Pool{
	New: func() any {
		return &printer{}
	},
}

func acquirePrinter(opts Options, sink LineSink) *printer {
	p := printerPool.Get().(*printer)
	p.opts = opts
	p.sink = sink
	return p
}

func releasePrinter(p *printer) {
	if p == nil {
		return
	}
	p.opts = Options{}
	p.sink = nil
	p.scratch.Reset()
	printerPool.Put(p)
}
