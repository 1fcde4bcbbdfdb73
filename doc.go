// Package prettyhttp renders boxed, colorized, human-readable transcripts of
// HTTP client traffic. It attaches to an http.Client as a RoundTripper and
// observes: requests and responses pass through unmodified while a formatted
// transcript streams, line by line, to an injected sink.
//
// The core is a structured pretty-printer over a small closed value model
// (mapping, sequence, binary buffer, scalar). Mappings keep insertion order,
// small leaf-only structures flatten onto one line in compact mode, binary
// buffers dump as fixed-width decimal chunks, and long scalars wrap at the
// configured column budget.
//
// Attaching to a client:
//
//	transport, err := prettyhttp.New(
//		prettyhttp.WithResponseHeader(true),
//		prettyhttp.WithPalette("default"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	client := &http.Client{Transport: transport}
//
// Printing a value directly:
//
//	v, err := prettyhttp.FromJSON(body)
//	if err != nil {
//		log.Fatal(err)
//	}
//	prettyhttp.PrintValue(v, nil, prettyhttp.WriterSink(os.Stdout))
//
// Transcript lines can be routed anywhere: WriterSink covers files and
// rotating writers, ZapSink feeds an existing zap pipeline, and any
// func(string) works as a custom sink.
package prettyhttp
