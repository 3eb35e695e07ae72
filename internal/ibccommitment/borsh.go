package ibccommitment

import "encoding/binary"

// EncodePacketBorsh serializes a Packet the same way the Solana-side router
// does via #[derive(AnchorSerialize)] (the Borsh format: fixed-width
// integers little-endian, strings and byte vectors as a u32 length prefix
// followed by raw bytes). It is a direct, minimal encoder on top of
// encoding/binary for exactly the fields ReceiptCommitmentHash needs to hash.
func EncodePacketBorsh(p Packet) []byte {
	buf := make([]byte, 0, 64+len(p.SourceClient)+len(p.DestClient))

	var seq [8]byte
	binary.LittleEndian.PutUint64(seq[:], p.Sequence)
	buf = append(buf, seq[:]...)

	buf = appendBorshString(buf, p.SourceClient)
	buf = appendBorshString(buf, p.DestClient)

	var timeout [8]byte
	binary.LittleEndian.PutUint64(timeout[:], p.TimeoutTimestamp)
	buf = append(buf, timeout[:]...)

	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(p.Payloads)))
	buf = append(buf, count[:]...)
	for _, payload := range p.Payloads {
		buf = appendBorshPayload(buf, payload)
	}
	return buf
}

func appendBorshString(buf []byte, s string) []byte {
	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(len(s)))
	buf = append(buf, length[:]...)
	return append(buf, s...)
}

func appendBorshBytes(buf []byte, b []byte) []byte {
	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(len(b)))
	buf = append(buf, length[:]...)
	return append(buf, b...)
}

func appendBorshPayload(buf []byte, p Payload) []byte {
	buf = appendBorshString(buf, p.SourcePort)
	buf = appendBorshString(buf, p.DestPort)
	buf = appendBorshString(buf, p.Version)
	buf = appendBorshString(buf, p.Encoding)
	buf = appendBorshBytes(buf, p.Value)
	return buf
}
