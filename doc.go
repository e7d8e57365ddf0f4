// Package yuvconv converts single pixel samples between RGB and YUV (Y'CbCr).
//
// Conversions are parameterized by colorimetry standard (BT.601, BT.709, BT.2020),
// signal range (full or limited/studio swing) and bit depth. The math is depth-generic:
// the 8-bit limited range constants (16, 219, 128, 224) are scaled by 2^(depth-8).
// Forward and inverse transforms are algebraic inverses, so a round trip is lossy only
// through integer rounding.
package yuvconv
