// Package kernel provides the domain primitives shared by the showcase model.
// Currently that is UUID, the identifier value object used by the order
// aggregate and its persistence layer.
package kernel
