package diagstream

import "hash/crc32"

var crcTable = crc32.MakeTable(crc32.IEEE)

// ComputeCRC computes the CRC-32 IEEE checksum of a frame's payload.
func ComputeCRC(data []byte) uint32 {
	return crc32.Checksum(data, crcTable)
}

// VerifyCRC reports whether data's checksum matches expected.
func VerifyCRC(data []byte, expected uint32) bool {
	return ComputeCRC(data) == expected
}
