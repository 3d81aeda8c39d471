package payload

import (
	"fmt"

	"github.com/lowpan-mt/mt-go/pkg/mac"
)

// Width is the wire shape of an attribute value.
type Width uint8

const (
	WidthBool Width = iota + 1
	WidthUint8
	WidthUint16
	WidthUint32
	WidthArray

	// WidthIndex values follow the codec's index width.
	WidthIndex
)

// Descriptor describes how an attribute value is marshaled.
type Descriptor struct {
	Width Width

	// Size is the array length, or the maximum length of a variable array.
	Size int

	// Variable arrays take their current length from LengthAttr.
	Variable   bool
	LengthAttr mac.PIBAttribute
}

var (
	boolAttr   = Descriptor{Width: WidthBool}
	uint8Attr  = Descriptor{Width: WidthUint8}
	uint16Attr = Descriptor{Width: WidthUint16}
	uint32Attr = Descriptor{Width: WidthUint32}
	indexAttr  = Descriptor{Width: WidthIndex}
)

func arrayAttr(size int) Descriptor {
	return Descriptor{Width: WidthArray, Size: size}
}

// MaxBeaconPayloadSize is the largest beacon payload.
const MaxBeaconPayloadSize = 52

var pibDescriptors = map[mac.PIBAttribute]Descriptor{
	mac.AttrAckWaitDuration:            uint8Attr,
	mac.AttrAssociationPermit:          boolAttr,
	mac.AttrAutoRequest:                boolAttr,
	mac.AttrBattLifeExt:                boolAttr,
	mac.AttrBattLifeExtPeriods:         uint8Attr,
	mac.AttrBeaconPayload:              {Width: WidthArray, Size: MaxBeaconPayloadSize, Variable: true, LengthAttr: mac.AttrBeaconPayloadLength},
	mac.AttrBeaconPayloadLength:        uint8Attr,
	mac.AttrBeaconOrder:                uint8Attr,
	mac.AttrBeaconTxTime:               uint32Attr,
	mac.AttrBSN:                        uint8Attr,
	mac.AttrCoordExtendedAddress:       arrayAttr(8),
	mac.AttrCoordShortAddress:          uint16Attr,
	mac.AttrDSN:                        uint8Attr,
	mac.AttrGTSPermit:                  boolAttr,
	mac.AttrMaxCSMABackoffs:            uint8Attr,
	mac.AttrMinBE:                      uint8Attr,
	mac.AttrPANID:                      uint16Attr,
	mac.AttrPromiscuousMode:            boolAttr,
	mac.AttrRxOnWhenIdle:               boolAttr,
	mac.AttrShortAddress:               uint16Attr,
	mac.AttrSuperframeOrder:            uint8Attr,
	mac.AttrTransactionPersistenceTime: uint16Attr,
	mac.AttrAssociatedPANCoord:         boolAttr,
	mac.AttrMaxBE:                      uint8Attr,
	mac.AttrMaxFrameTotalWaitTime:      uint16Attr,
	mac.AttrMaxFrameRetries:            uint8Attr,
	mac.AttrResponseWaitTime:           uint8Attr,
	mac.AttrSyncSymbolOffset:           uint8Attr,
	mac.AttrTimestampSupported:         boolAttr,
	mac.AttrSecurityEnabled:            boolAttr,
	mac.AttrEBSN:                       uint8Attr,
	mac.AttrEBeaconOrder:               uint8Attr,
	mac.AttrEBeaconOrderNBPAN:          uint16Attr,
	mac.AttrOffsetTimeslot:             uint8Attr,
	mac.AttrIncludeMPIE:                boolAttr,
	mac.AttrPhyTransmitPowerSigned:     uint8Attr,
	mac.AttrLogicalChannel:             uint8Attr,
	mac.AttrExtendedAddress:            arrayAttr(8),
	mac.AttrAltBE:                      uint8Attr,
	mac.AttrDeviceBeaconOrder:          uint8Attr,
	mac.AttrRF4CEPowerSavings:          boolAttr,
	mac.AttrFrameVersionSupport:        uint8Attr,
	mac.AttrChannelPage:                uint8Attr,
	mac.AttrPhyCurrentDescriptorID:     uint8Attr,
	mac.AttrFCSType:                    boolAttr,
}

var securityDescriptors = map[mac.SecurityAttribute]Descriptor{
	mac.SecAttrKeyTableEntries:           indexAttr,
	mac.SecAttrDeviceTableEntries:        indexAttr,
	mac.SecAttrSecurityLevelTableEntries: indexAttr,
	mac.SecAttrFrameCounter:              uint32Attr,
	mac.SecAttrAutoRequestSecurityLevel:  uint8Attr,
	mac.SecAttrAutoRequestKeyIDMode:      uint8Attr,
	mac.SecAttrAutoRequestKeySource:      arrayAttr(8),
	mac.SecAttrAutoRequestKeyIndex:       uint8Attr,
	mac.SecAttrDefaultKeySource:          arrayAttr(8),
	mac.SecAttrPANCoordExtendedAddress:   arrayAttr(8),
	mac.SecAttrPANCoordShortAddress:      uint16Attr,
}

var fhDescriptors = map[mac.FHAttribute]Descriptor{
	mac.FHAttrTrackParentEUI:     arrayAttr(8),
	mac.FHAttrBCInterval:         uint32Attr,
	mac.FHAttrUCExcludedChannels: arrayAttr(mac.ChannelMaskSize),
	mac.FHAttrBCExcludedChannels: arrayAttr(mac.ChannelMaskSize),
	mac.FHAttrUCDwellInterval:    uint8Attr,
	mac.FHAttrBCDwellInterval:    uint8Attr,
	mac.FHAttrClockDrift:         uint8Attr,
	mac.FHAttrTimingAccuracy:     uint8Attr,
	mac.FHAttrUCChannelFunction:  uint8Attr,
	mac.FHAttrBCChannelFunction:  uint8Attr,
	mac.FHAttrUseParentBSIE:      uint8Attr,
	mac.FHAttrBroadcastSchedID:   uint16Attr,
	mac.FHAttrUCFixedChannel:     uint16Attr,
	mac.FHAttrBCFixedChannel:     uint16Attr,
	mac.FHAttrPANSize:            uint16Attr,
	mac.FHAttrRoutingCost:        uint8Attr,
	mac.FHAttrRoutingMethod:      uint8Attr,
	mac.FHAttrEAPOLReady:         uint8Attr,
	mac.FHAttrFANTPSVersion:      uint8Attr,
	mac.FHAttrNetName:            arrayAttr(32),
	mac.FHAttrPANVersion:         uint16Attr,
	mac.FHAttrGTK0Hash:           arrayAttr(8),
	mac.FHAttrGTK1Hash:           arrayAttr(8),
	mac.FHAttrGTK2Hash:           arrayAttr(8),
	mac.FHAttrGTK3Hash:           arrayAttr(8),
	mac.FHAttrNeighborValidTime:  uint16Attr,
}

// PIBDescriptor returns the descriptor of a PIB attribute.
func PIBDescriptor(attr mac.PIBAttribute) (Descriptor, bool) {
	d, ok := pibDescriptors[attr]
	return d, ok
}

// SecurityDescriptorOf returns the descriptor of a scalar security attribute.
func SecurityDescriptorOf(attr mac.SecurityAttribute) (Descriptor, bool) {
	d, ok := securityDescriptors[attr]
	return d, ok
}

// FHDescriptor returns the descriptor of a frequency-hopping attribute.
func FHDescriptor(attr mac.FHAttribute) (Descriptor, bool) {
	d, ok := fhDescriptors[attr]
	return d, ok
}

// mustLengthAttr returns the length attribute of a variable array. A
// variable array without a scalar length attribute is a table error.
func mustLengthAttr(attr mac.PIBAttribute, d Descriptor) mac.PIBAttribute {
	ld, ok := pibDescriptors[d.LengthAttr]
	if !d.Variable || !ok || ld.Width == WidthArray {
		panic(fmt.Sprintf("payload: %s has no length attribute", attr))
	}
	return d.LengthAttr
}

// scalarSize returns the wire size of a scalar value.
func (c *Codec) scalarSize(d Descriptor) int {
	switch d.Width {
	case WidthBool, WidthUint8:
		return 1
	case WidthUint16:
		return 2
	case WidthUint32:
		return 4
	case WidthIndex:
		return c.width.Size()
	default:
		return d.Size
	}
}
