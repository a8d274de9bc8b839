// Package serialization saves and loads network weights.
//
// The weights file is a flat stream of IEEE-754 float64 values in
// big-endian byte order, with no header:
//
//	[8 bytes: parameter 0][8 bytes: parameter 1]...
//
// Values appear in the order Initialised.Parameters yields them, which is
// the order Network.WithIter consumes them, so a file round-trips through
// any network with the same topology.
//
// Example usage:
//
//	// Save
//	if err := serialization.Save("weights-float64.bin", trained); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load into the same topology
//	network := nn.NewInput(784).Chain(nn.NewDense(10, nn.NewLinear()))
//	trained, err := serialization.Load("weights-float64.bin", network)
package serialization
