package qoa

// scalefactorTable holds the 16 scalefactors used to scale quantized
// residuals back into sample space. Computed as round(pow(s+1, 2.75));
// hard-coded here since the table never changes and must be bit-exact
// between encoder and decoder.
var scalefactorTable = [16]int{
	1, 7, 21, 45, 84, 138, 211, 304, 421, 562, 731, 928, 1157, 1419, 1715, 2048,
}

// reciprocalTable holds the .16 fixed-point reciprocal of each
// scalefactor, so div can multiply instead of divide:
//
//	reciprocalTable[s] = ((1<<16) + scalefactorTable[s] - 1) / scalefactorTable[s]
var reciprocalTable = [16]int{
	65536, 9363, 3121, 1457, 781, 475, 311, 216, 156, 117, 90, 71, 57, 47, 39, 32,
}

// quantTable maps a scaled, clamped residual in [-8, 8] (indexed as
// residual+8) to its 3 bit quantized code. It becomes less accurate at
// the high end; residual 0 shares a code with the lowest positive
// residual, which is fine because div always rounds away from zero.
var quantTable = [17]int{
	7, 7, 7, 5, 5, 3, 3, 1, // -8..-1
	0,                      //  0
	0, 2, 2, 4, 4, 6, 6, 6, //  1..8
}

// dequantTable maps each (scalefactor, quantized code) pair back to its
// unscaled sample-space value. Since div rounds away from zero, the
// smallest magnitude entries correspond to 3/4 rather than 1. Computed
// as round(scalefactorTable[s] * dqt[q]) for
// dqt = {0.75, -0.75, 2.5, -2.5, 4.5, -4.5, 7, -7}, with ties rounded
// away from zero.
var dequantTable = [16][8]int16{
	{1, -1, 3, -3, 5, -5, 7, -7},
	{5, -5, 18, -18, 32, -32, 49, -49},
	{16, -16, 53, -53, 95, -95, 147, -147},
	{34, -34, 113, -113, 203, -203, 315, -315},
	{63, -63, 210, -210, 378, -378, 588, -588},
	{104, -104, 345, -345, 621, -621, 966, -966},
	{158, -158, 528, -528, 950, -950, 1477, -1477},
	{228, -228, 760, -760, 1368, -1368, 2128, -2128},
	{316, -316, 1053, -1053, 1895, -1895, 2947, -2947},
	{422, -422, 1405, -1405, 2529, -2529, 3934, -3934},
	{548, -548, 1828, -1828, 3290, -3290, 5117, -5117},
	{696, -696, 2320, -2320, 4176, -4176, 6496, -6496},
	{868, -868, 2893, -2893, 5207, -5207, 8099, -8099},
	{1064, -1064, 3548, -3548, 6386, -6386, 9933, -9933},
	{1286, -1286, 4288, -4288, 7718, -7718, 12005, -12005},
	{1536, -1536, 5120, -5120, 9216, -9216, 14336, -14336},
}
