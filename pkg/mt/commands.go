package mt

// SYS command ids.
const (
	SysResetReq  uint8 = 0x00
	SysPing      uint8 = 0x01
	SysVersion   uint8 = 0x02
	SysNVCreate  uint8 = 0x30
	SysNVDelete  uint8 = 0x31
	SysNVLength  uint8 = 0x32
	SysNVRead    uint8 = 0x33
	SysNVWrite   uint8 = 0x34
	SysNVUpdate  uint8 = 0x35
	SysNVCompact uint8 = 0x36
	SysResetInd  uint8 = 0x80
)

// MAC request command ids.
const (
	MACResetReq         uint8 = 0x01
	MACInit             uint8 = 0x02
	MACStartReq         uint8 = 0x03
	MACSyncReq          uint8 = 0x04
	MACDataReq          uint8 = 0x05
	MACAssociateReq     uint8 = 0x06
	MACDisassociateReq  uint8 = 0x07
	MACGetReq           uint8 = 0x08
	MACSetReq           uint8 = 0x09
	MACScanReq          uint8 = 0x0C
	MACPollReq          uint8 = 0x0D
	MACPurgeReq         uint8 = 0x0E
	MACSetRxGainReq     uint8 = 0x0F
	MACSecurityGetReq   uint8 = 0x30
	MACSecuritySetReq   uint8 = 0x31
	MACUpdatePANIDReq   uint8 = 0x32
	MACAddDeviceReq     uint8 = 0x33
	MACDeleteDeviceReq  uint8 = 0x34
	MACReadKeyReq       uint8 = 0x35
	MACWriteKeyReq      uint8 = 0x36
	MACDeleteKeyReq     uint8 = 0x37
	MACDeleteAllDevsReq uint8 = 0x38
	MACFHEnableReq      uint8 = 0x40
	MACFHStartReq       uint8 = 0x41
	MACFHGetReq         uint8 = 0x42
	MACFHSetReq         uint8 = 0x43
	MACAssociateRsp     uint8 = 0x50
	MACOrphanRsp        uint8 = 0x51
)

// MAC callback (AREQ) command ids.
const (
	MACSyncLossInd     uint8 = 0x80
	MACAssociateInd    uint8 = 0x81
	MACAssociateCnf    uint8 = 0x82
	MACBeaconNotifyInd uint8 = 0x83
	MACDataCnf         uint8 = 0x84
	MACDataInd         uint8 = 0x85
	MACDisassociateInd uint8 = 0x86
	MACDisassociateCnf uint8 = 0x87
	MACOrphanInd       uint8 = 0x8A
	MACPollCnf         uint8 = 0x8B
	MACScanCnf         uint8 = 0x8C
	MACCommStatusInd   uint8 = 0x8D
	MACStartCnf        uint8 = 0x8E
	MACPurgeCnf        uint8 = 0x90
	MACPollInd         uint8 = 0x91
)

// UTIL command ids.
const (
	UtilCallbackSub uint8 = 0x06
	UtilLoopback    uint8 = 0x10
	UtilRandom      uint8 = 0x12
	UtilExtAddr     uint8 = 0xEE
)
