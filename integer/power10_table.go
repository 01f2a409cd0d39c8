package integer

import (
	"math"

	"lukechampine.com/uint128"
)

// The 16 and 32 bit membership tests hash the value into a small table where
// every power of ten owns a distinct slot. Zero is never a power of ten so it
// marks the empty slots. Hashing only uses 32-bit operations.
//
//  16: slot = (v >> 3) & 7
//  32: slot = (v ^ (v >> 14)) & 15
var pow10HashU16 = [8]uint32{1, 10, 10000, 0, 100, 1000, 0, 0}

var pow10HashU32 = [16]uint32{
	10000, 1, 10000000, 0, 100, 0, 100000, 100000000,
	1000, 0, 10, 1000000000, 0, 1000000, 0, 0,
}

// pow10LZU64 maps a leading zero count to the only power of ten with that
// many leading zeros. Consecutive powers of ten are at least 3 bits apart so
// no two of them share a slot. Empty slots hold all ones, which has no leading
// zeros and slot 0 is taken by 10^19.
var pow10LZU64 = [65]uint64{
	10000000000000000000, // 0
	math.MaxUint64,       // 1
	math.MaxUint64,       // 2
	math.MaxUint64,       // 3
	1000000000000000000,  // 4
	math.MaxUint64,       // 5
	math.MaxUint64,       // 6
	100000000000000000,   // 7
	math.MaxUint64,       // 8
	math.MaxUint64,       // 9
	10000000000000000,    // 10
	math.MaxUint64,       // 11
	math.MaxUint64,       // 12
	math.MaxUint64,       // 13
	1000000000000000,     // 14
	math.MaxUint64,       // 15
	math.MaxUint64,       // 16
	100000000000000,      // 17
	math.MaxUint64,       // 18
	math.MaxUint64,       // 19
	10000000000000,       // 20
	math.MaxUint64,       // 21
	math.MaxUint64,       // 22
	math.MaxUint64,       // 23
	1000000000000,        // 24
	math.MaxUint64,       // 25
	math.MaxUint64,       // 26
	100000000000,         // 27
	math.MaxUint64,       // 28
	math.MaxUint64,       // 29
	10000000000,          // 30
	math.MaxUint64,       // 31
	math.MaxUint64,       // 32
	math.MaxUint64,       // 33
	1000000000,           // 34
	math.MaxUint64,       // 35
	math.MaxUint64,       // 36
	100000000,            // 37
	math.MaxUint64,       // 38
	math.MaxUint64,       // 39
	10000000,             // 40
	math.MaxUint64,       // 41
	math.MaxUint64,       // 42
	math.MaxUint64,       // 43
	1000000,              // 44
	math.MaxUint64,       // 45
	math.MaxUint64,       // 46
	100000,               // 47
	math.MaxUint64,       // 48
	math.MaxUint64,       // 49
	10000,                // 50
	math.MaxUint64,       // 51
	math.MaxUint64,       // 52
	math.MaxUint64,       // 53
	1000,                 // 54
	math.MaxUint64,       // 55
	math.MaxUint64,       // 56
	100,                  // 57
	math.MaxUint64,       // 58
	math.MaxUint64,       // 59
	10,                   // 60
	math.MaxUint64,       // 61
	math.MaxUint64,       // 62
	1,                    // 63
	math.MaxUint64,       // 64
}

// digitsU32 is indexed by leading zeros. Values with the same leading zero
// count have floor(log10(v)) equal to n or n+1, it is n+1 iff v >= pow10.
// The final entry only exists so the previous power of ten (lz+1) can be read
// for v = 0.
var digitsU32 = [34]digits[uint32]{
	{8, 1000000000}, // 0
	{8, 1000000000}, // 1
	{8, 1000000000}, // 2
	{8, 1000000000}, // 3
	{8, 1000000000}, // 4
	{7, 100000000},  // 5
	{7, 100000000},  // 6
	{7, 100000000},  // 7
	{6, 10000000},   // 8
	{6, 10000000},   // 9
	{6, 10000000},   // 10
	{6, 10000000},   // 11
	{5, 1000000},    // 12
	{5, 1000000},    // 13
	{5, 1000000},    // 14
	{4, 100000},     // 15
	{4, 100000},     // 16
	{4, 100000},     // 17
	{3, 10000},      // 18
	{3, 10000},      // 19
	{3, 10000},      // 20
	{3, 10000},      // 21
	{2, 1000},       // 22
	{2, 1000},       // 23
	{2, 1000},       // 24
	{1, 100},        // 25
	{1, 100},        // 26
	{1, 100},        // 27
	{0, 10},         // 28
	{0, 10},         // 29
	{0, 10},         // 30
	{0, 10},         // 31
	{0, 1},          // 32
	{0, 1},          // 33
}

// digitsU64 is digitsU32 for 64 bit values.
var digitsU64 = [66]digits[uint64]{
	{18, 10000000000000000000}, // 0
	{18, 10000000000000000000}, // 1
	{18, 10000000000000000000}, // 2
	{18, 10000000000000000000}, // 3
	{17, 1000000000000000000},  // 4
	{17, 1000000000000000000},  // 5
	{17, 1000000000000000000},  // 6
	{16, 100000000000000000},   // 7
	{16, 100000000000000000},   // 8
	{16, 100000000000000000},   // 9
	{15, 10000000000000000},    // 10
	{15, 10000000000000000},    // 11
	{15, 10000000000000000},    // 12
	{15, 10000000000000000},    // 13
	{14, 1000000000000000},     // 14
	{14, 1000000000000000},     // 15
	{14, 1000000000000000},     // 16
	{13, 100000000000000},      // 17
	{13, 100000000000000},      // 18
	{13, 100000000000000},      // 19
	{12, 10000000000000},       // 20
	{12, 10000000000000},       // 21
	{12, 10000000000000},       // 22
	{12, 10000000000000},       // 23
	{11, 1000000000000},        // 24
	{11, 1000000000000},        // 25
	{11, 1000000000000},        // 26
	{10, 100000000000},         // 27
	{10, 100000000000},         // 28
	{10, 100000000000},         // 29
	{9, 10000000000},           // 30
	{9, 10000000000},           // 31
	{9, 10000000000},           // 32
	{9, 10000000000},           // 33
	{8, 1000000000},            // 34
	{8, 1000000000},            // 35
	{8, 1000000000},            // 36
	{7, 100000000},             // 37
	{7, 100000000},             // 38
	{7, 100000000},             // 39
	{6, 10000000},              // 40
	{6, 10000000},              // 41
	{6, 10000000},              // 42
	{6, 10000000},              // 43
	{5, 1000000},               // 44
	{5, 1000000},               // 45
	{5, 1000000},               // 46
	{4, 100000},                // 47
	{4, 100000},                // 48
	{4, 100000},                // 49
	{3, 10000},                 // 50
	{3, 10000},                 // 51
	{3, 10000},                 // 52
	{3, 10000},                 // 53
	{2, 1000},                  // 54
	{2, 1000},                  // 55
	{2, 1000},                  // 56
	{1, 100},                   // 57
	{1, 100},                   // 58
	{1, 100},                   // 59
	{0, 10},                    // 60
	{0, 10},                    // 61
	{0, 10},                    // 62
	{0, 10},                    // 63
	{0, 1},                     // 64
	{0, 1},                     // 65
}

// pow10U128 lists every power of ten that fits in 128 bits.
var pow10U128 = [...]uint128.Uint128{
	{Lo: 1},                                          // 1e0
	{Lo: 10},                                         // 1e1
	{Lo: 100},                                        // 1e2
	{Lo: 1000},                                       // 1e3
	{Lo: 10000},                                      // 1e4
	{Lo: 100000},                                     // 1e5
	{Lo: 1000000},                                    // 1e6
	{Lo: 10000000},                                   // 1e7
	{Lo: 100000000},                                  // 1e8
	{Lo: 1000000000},                                 // 1e9
	{Lo: 10000000000},                                // 1e10
	{Lo: 100000000000},                               // 1e11
	{Lo: 1000000000000},                              // 1e12
	{Lo: 10000000000000},                             // 1e13
	{Lo: 100000000000000},                            // 1e14
	{Lo: 1000000000000000},                           // 1e15
	{Lo: 10000000000000000},                          // 1e16
	{Lo: 100000000000000000},                         // 1e17
	{Lo: 1000000000000000000},                        // 1e18
	{Lo: 10000000000000000000},                       // 1e19
	{Lo: 0x6bc75e2d63100000, Hi: 0x0000000000000005}, // 1e20
	{Lo: 0x35c9adc5dea00000, Hi: 0x0000000000000036}, // 1e21
	{Lo: 0x19e0c9bab2400000, Hi: 0x000000000000021e}, // 1e22
	{Lo: 0x02c7e14af6800000, Hi: 0x000000000000152d}, // 1e23
	{Lo: 0x1bcecceda1000000, Hi: 0x000000000000d3c2}, // 1e24
	{Lo: 0x161401484a000000, Hi: 0x0000000000084595}, // 1e25
	{Lo: 0xdcc80cd2e4000000, Hi: 0x000000000052b7d2}, // 1e26
	{Lo: 0x9fd0803ce8000000, Hi: 0x00000000033b2e3c}, // 1e27
	{Lo: 0x3e25026110000000, Hi: 0x00000000204fce5e}, // 1e28
	{Lo: 0x6d7217caa0000000, Hi: 0x00000001431e0fae}, // 1e29
	{Lo: 0x4674edea40000000, Hi: 0x0000000c9f2c9cd0}, // 1e30
	{Lo: 0xc0914b2680000000, Hi: 0x0000007e37be2022}, // 1e31
	{Lo: 0x85acef8100000000, Hi: 0x000004ee2d6d415b}, // 1e32
	{Lo: 0x38c15b0a00000000, Hi: 0x0000314dc6448d93}, // 1e33
	{Lo: 0x378d8e6400000000, Hi: 0x0001ed09bead87c0}, // 1e34
	{Lo: 0x2b878fe800000000, Hi: 0x0013426172c74d82}, // 1e35
	{Lo: 0xb34b9f1000000000, Hi: 0x00c097ce7bc90715}, // 1e36
	{Lo: 0x00f436a000000000, Hi: 0x0785ee10d5da46d9}, // 1e37
	{Lo: 0x098a224000000000, Hi: 0x4b3b4ca85a86c47a}, // 1e38
}
