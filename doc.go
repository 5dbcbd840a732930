// Package segnet provides semantic image segmentation backed by a native
// inference engine.
//
// # Quick Start
//
//	net, err := segnet.New(segnet.Config{Network: "voc"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer net.Close()
//
//	buf := &segnet.Buffer{Data: pixels} // RGBA float32, values 0-255
//	if _, err := net.Process(buf, 640, 480); err != nil {
//	    log.Fatal(err)
//	}
//	if err := net.Overlay(buf, 640, 480, false); err != nil {
//	    log.Fatal(err)
//	}
//
// # Call Model
//
// Every call is synchronous and blocking: it runs to completion on the
// calling goroutine before returning. A SegNet handle is not safe for
// concurrent use; callers that share a handle across goroutines must
// serialize access themselves.
//
// Process computes the class map for a frame and holds it as engine state;
// Overlay and Mask render from the last processed frame. Callers must invoke
// Process before Overlay on a given frame. Calling Overlay first is not
// validated here and fails at the engine.
//
// # Buffers
//
// Image buffers are borrowed, never owned: SegNet reads and writes the
// caller's pixels in place for the duration of a call and keeps no reference
// afterwards. See Buffer for the expected pixel layout.
//
// # Networks
//
// Built-in networks (cityscapes, voc, aerial-fpv, ...) resolve to model and
// label files under a networks directory. Custom models are configured with
// an argument-token list; see Config.
package segnet
