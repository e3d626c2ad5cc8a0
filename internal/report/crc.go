package report

import "hash/crc32"

// Seed bytes folded into the CRC ahead of the payload, one per report
// context. Only the output seed is used for signing; input and feature
// report checksums are never validated on the host side.
const (
	crcSeedInput   byte = 0xA1
	crcSeedOutput  byte = 0xA2
	crcSeedFeature byte = 0xA3
)

// SignOutput computes the Bluetooth output-report signature: a reflected
// CRC32 (polynomial 0xEDB88320) over the output-report seed byte followed
// by the frame bytes, excluding the trailing checksum slot.
func SignOutput(frame []byte) uint32 {
	return signCRC(crcSeedOutput, frame)
}

func signCRC(seed byte, data []byte) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, []byte{seed})
	return crc32.Update(crc, crc32.IEEETable, data)
}
