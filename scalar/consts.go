package scalar

// N is the order of the Kummer subgroup this module signs over (250 bits,
// little-endian 32-bit words). Used by Negate (N-x) and, via uint256, by
// the public canonical-range check.
var n = [8]uint32{0x7BF3FA43, 0xB88CF4B4, 0x065EAB00, 0x2D3D8036, 0xDF38AD6B, 0xFCCB2967, 0xFFFFFFFF, 0x03FFFFFF}

// l and l6 are the folding constants large_red uses to reduce a 512-bit
// product down to N's 250 bits. Both are conceptually ~192-bit values
// stored in 8-word containers (the top two words are always zero) so they
// can be passed directly to largeMul alongside a full 8-word operand.
var l = [8]uint32{0x840C05BD, 0x47730B4B, 0xF9A154FF, 0xD2C27FC9, 0x20C75294, 0x0334D698, 0, 0}
var l6 = [8]uint32{0x03016F40, 0xDCC2D2E1, 0x68553FD1, 0xB09FF27E, 0x31D4A534, 0xCD35A608, 0, 0}
