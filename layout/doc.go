// Package layout describes loudspeaker layouts: an ordered list of named
// channels, each with a real (as-deployed) and nominal (idealised) polar
// position, plus a handful of reference ITU-R BS.2051 layouts used to
// configure and test the panner package.
package layout
