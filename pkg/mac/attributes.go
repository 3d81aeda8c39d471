package mac

import "fmt"

// PIBAttribute identifies a MAC PIB attribute.
type PIBAttribute uint8

const (
	AttrAckWaitDuration            PIBAttribute = 0x40
	AttrAssociationPermit          PIBAttribute = 0x41
	AttrAutoRequest                PIBAttribute = 0x42
	AttrBattLifeExt                PIBAttribute = 0x43
	AttrBattLifeExtPeriods         PIBAttribute = 0x44
	AttrBeaconPayload              PIBAttribute = 0x45
	AttrBeaconPayloadLength        PIBAttribute = 0x46
	AttrBeaconOrder                PIBAttribute = 0x47
	AttrBeaconTxTime               PIBAttribute = 0x48
	AttrBSN                        PIBAttribute = 0x49
	AttrCoordExtendedAddress       PIBAttribute = 0x4A
	AttrCoordShortAddress          PIBAttribute = 0x4B
	AttrDSN                        PIBAttribute = 0x4C
	AttrGTSPermit                  PIBAttribute = 0x4D
	AttrMaxCSMABackoffs            PIBAttribute = 0x4E
	AttrMinBE                      PIBAttribute = 0x4F
	AttrPANID                      PIBAttribute = 0x50
	AttrPromiscuousMode            PIBAttribute = 0x51
	AttrRxOnWhenIdle               PIBAttribute = 0x52
	AttrShortAddress               PIBAttribute = 0x53
	AttrSuperframeOrder            PIBAttribute = 0x54
	AttrTransactionPersistenceTime PIBAttribute = 0x55
	AttrAssociatedPANCoord         PIBAttribute = 0x56
	AttrMaxBE                      PIBAttribute = 0x57
	AttrMaxFrameTotalWaitTime      PIBAttribute = 0x58
	AttrMaxFrameRetries            PIBAttribute = 0x59
	AttrResponseWaitTime           PIBAttribute = 0x5A
	AttrSyncSymbolOffset           PIBAttribute = 0x5B
	AttrTimestampSupported         PIBAttribute = 0x5C
	AttrSecurityEnabled            PIBAttribute = 0x5D
	AttrEBSN                       PIBAttribute = 0x5E
	AttrEBeaconOrder               PIBAttribute = 0x5F
	AttrEBeaconOrderNBPAN          PIBAttribute = 0x60
	AttrOffsetTimeslot             PIBAttribute = 0x61
	AttrIncludeMPIE                PIBAttribute = 0x62
	AttrPhyTransmitPowerSigned     PIBAttribute = 0xE0
	AttrLogicalChannel             PIBAttribute = 0xE1
	AttrExtendedAddress            PIBAttribute = 0xE2
	AttrAltBE                      PIBAttribute = 0xE3
	AttrDeviceBeaconOrder          PIBAttribute = 0xE4
	AttrRF4CEPowerSavings          PIBAttribute = 0xE5
	AttrFrameVersionSupport        PIBAttribute = 0xE6
	AttrChannelPage                PIBAttribute = 0xE7
	AttrPhyCurrentDescriptorID     PIBAttribute = 0xE8
	AttrFCSType                    PIBAttribute = 0xE9
)

// String returns the attribute id in hex.
func (a PIBAttribute) String() string {
	return fmt.Sprintf("PIB(0x%02X)", uint8(a))
}

// SecurityAttribute identifies a security PIB attribute.
type SecurityAttribute uint8

const (
	SecAttrKeyTableEntries           SecurityAttribute = 0x81
	SecAttrDeviceTableEntries        SecurityAttribute = 0x82
	SecAttrSecurityLevelTableEntries SecurityAttribute = 0x83
	SecAttrFrameCounter              SecurityAttribute = 0x84
	SecAttrAutoRequestSecurityLevel  SecurityAttribute = 0x85
	SecAttrAutoRequestKeyIDMode      SecurityAttribute = 0x86
	SecAttrAutoRequestKeySource      SecurityAttribute = 0x87
	SecAttrAutoRequestKeyIndex       SecurityAttribute = 0x88
	SecAttrDefaultKeySource          SecurityAttribute = 0x89
	SecAttrPANCoordExtendedAddress   SecurityAttribute = 0x8A
	SecAttrPANCoordShortAddress      SecurityAttribute = 0x8B

	// Table entries.
	SecAttrKeyIDLookupEntry   SecurityAttribute = 0xD0
	SecAttrKeyDeviceEntry     SecurityAttribute = 0xD1
	SecAttrKeyUsageEntry      SecurityAttribute = 0xD2
	SecAttrKeyEntry           SecurityAttribute = 0xD3
	SecAttrDeviceEntry        SecurityAttribute = 0xD4
	SecAttrSecurityLevelEntry SecurityAttribute = 0xD5
)

// String returns the attribute id in hex.
func (a SecurityAttribute) String() string {
	return fmt.Sprintf("SEC(0x%02X)", uint8(a))
}

// IsEntry returns true for the table entry attributes.
func (a SecurityAttribute) IsEntry() bool {
	return a >= SecAttrKeyIDLookupEntry && a <= SecAttrSecurityLevelEntry
}

// FHAttribute identifies a frequency-hopping PIB attribute.
type FHAttribute uint16

const (
	FHAttrTrackParentEUI     FHAttribute = 0x2000
	FHAttrBCInterval         FHAttribute = 0x2001
	FHAttrUCExcludedChannels FHAttribute = 0x2002
	FHAttrBCExcludedChannels FHAttribute = 0x2003
	FHAttrUCDwellInterval    FHAttribute = 0x2004
	FHAttrBCDwellInterval    FHAttribute = 0x2005
	FHAttrClockDrift         FHAttribute = 0x2006
	FHAttrTimingAccuracy     FHAttribute = 0x2007
	FHAttrUCChannelFunction  FHAttribute = 0x2008
	FHAttrBCChannelFunction  FHAttribute = 0x2009
	FHAttrUseParentBSIE      FHAttribute = 0x200A
	FHAttrBroadcastSchedID   FHAttribute = 0x200B
	FHAttrUCFixedChannel     FHAttribute = 0x200C
	FHAttrBCFixedChannel     FHAttribute = 0x200D
	FHAttrPANSize            FHAttribute = 0x200E
	FHAttrRoutingCost        FHAttribute = 0x200F
	FHAttrRoutingMethod      FHAttribute = 0x2010
	FHAttrEAPOLReady         FHAttribute = 0x2011
	FHAttrFANTPSVersion      FHAttribute = 0x2012
	FHAttrNetName            FHAttribute = 0x2013
	FHAttrPANVersion         FHAttribute = 0x2014
	FHAttrGTK0Hash           FHAttribute = 0x2015
	FHAttrGTK1Hash           FHAttribute = 0x2016
	FHAttrGTK2Hash           FHAttribute = 0x2017
	FHAttrGTK3Hash           FHAttribute = 0x2018
	FHAttrNeighborValidTime  FHAttribute = 0x2019
)

// String returns the attribute id in hex.
func (a FHAttribute) String() string {
	return fmt.Sprintf("FH(0x%04X)", uint16(a))
}
