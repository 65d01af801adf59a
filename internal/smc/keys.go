package smc

// EncodeKey packs a 4-character key into its wire representation,
// most significant byte first: EncodeKey("TC0P") == 0x54433050.
// Callers must supply exactly four characters.
func EncodeKey(key string) uint32 {
	var packed uint32
	for i := 0; i < keyLength && i < len(key); i++ {
		packed |= uint32(key[i]) << ((keyLength - 1 - i) * 8)
	}

	return packed
}

// DecodeType unpacks a 32-bit type tag back into its 4-character form,
// the inverse of EncodeKey.
func DecodeType(packed uint32) string {
	tag := make([]byte, keyLength)
	for i := 0; i < keyLength; i++ {
		tag[i] = byte(packed >> ((keyLength - 1 - i) * 8))
	}

	return string(tag)
}

// decodeUint interprets the first size bytes of buf as a big-endian
// unsigned integer. This is the fan-count decode, distinct from the
// key packing above.
func decodeUint(buf []byte, size int) uint32 {
	if size > len(buf) {
		size = len(buf)
	}

	var total uint32
	for i := 0; i < size; i++ {
		total |= uint32(buf[i]) << ((size - 1 - i) * 8)
	}

	return total
}
