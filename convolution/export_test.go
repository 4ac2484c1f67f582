// Test-bridge exposing the unexported accumulator kernels to the
// convolution_test package, so the window contract is verifiable without
// widening the production API.
package convolution

// AddWindowForTest exposes addWindow for white-box accumulation tests.
var AddWindowForTest = addWindow

// SubWindowForTest exposes subWindow for white-box accumulation tests.
var SubWindowForTest = subWindow

// NewWindowForTest exposes newWindow for white-box accumulation tests.
var NewWindowForTest = newWindow
