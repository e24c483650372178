package version

const (
	// ProtocolVersion is the latest protocol version this node supports.
	ProtocolVersion uint32 = 70003

	// MinProtoVersion is the oldest protocol version that is supported at
	// all. Earlier versions are disconnected.
	MinProtoVersion uint32 = 209

	// MinPeerProtoVersion is the protocol version below which peers are
	// disconnected.
	MinPeerProtoVersion uint32 = 70002

	// CAddrTimeVersion is the protocol version which added the time field
	// to network addresses.
	CAddrTimeVersion uint32 = 31402

	// NoBlocksVersionStart and NoBlocksVersionEnd delimit the range of
	// protocol versions blocks must not be requested from.
	NoBlocksVersionStart uint32 = 32000
	NoBlocksVersionEnd   uint32 = 32400

	// BIP0031Version is the protocol version AFTER which a pong message
	// and nonce field in ping were added (pver > BIP0031Version).
	BIP0031Version uint32 = 60000

	// MempoolGDVersion is the protocol version which added the mempool
	// message and the enhanced getdata behavior.
	MempoolGDVersion uint32 = 60002
)

// AcceptsBlocksFrom returns whether blocks may be requested from a peer
// speaking the given protocol version.
func AcceptsBlocksFrom(protocolVersion uint32) bool {
	return protocolVersion < NoBlocksVersionStart || protocolVersion >= NoBlocksVersionEnd
}
