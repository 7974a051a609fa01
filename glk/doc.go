// Package glk ties the window tree, streams, events, and file
// references together behind the single object an interactive-fiction
// interpreter talks to.
//
// The Glk object is single-threaded by design: the interpreter drives
// it from one goroutine, blocking in Select when it has nothing to do.
// A display front end runs wherever it likes and feeds input back
// through the channel returned by EventSink; that channel is the only
// concurrency boundary.
//
// The front end supplies window behavior through a NewWindowFunc. Every
// window the interpreter opens gets one WindowImpl from the factory;
// text written to the window's stream arrives at the impl's PutString.
// A nil factory (or a nil impl) discards output, which is enough for
// headless use and tests.
package glk
