// Package xmlutil contains helpers for namespace qualified XML names and
// for reading xmlquery element trees.
package xmlutil
