package world

// ItemID identifies one of the 16 items.
type ItemID uint8

const (
	ItemWiresnips ItemID = iota
	ItemShovel
	ItemLockpick
	ItemPapers
	ItemPurse
	ItemUniform
	ItemFoodTin // "food"
	ItemCompass
	ItemBribe
	ItemKeySuitcase
	ItemKeyWarden
	ItemKeyCrate
	ItemKeyBox
	ItemPoison
	ItemRedCrossParcel
	ItemFlag

	NumItems = 16
)

// Item flag bits: HELD, POISONED, and a FOUND marker.
const (
	ItemFlagHeld     uint8 = 1 << 0
	ItemFlagPoisoned uint8 = 1 << 1
	ItemFlagFound    uint8 = 1 << 2
)

// Item room-and-flags bits layered over the room index: room index plus
// the NEARBY_6/NEARBY_7 flags and the room mask.
const (
	ItemRoomMask   uint8 = 0x3F
	ItemNearby6    uint8 = 1 << 6
	ItemNearby7    uint8 = 1 << 7
)

// NoRoom marks an item that has been picked up (it has no room).
const NoRoom uint8 = 0xFF

// ItemStruct is the full state of one item.
type ItemStruct struct {
	Item         ItemID
	Flags        uint8 // ItemFlag*
	RoomAndFlags uint8 // room | ItemNearby6 | ItemNearby7, or NoRoom when held
	Pos          Pos8
	Iso          IsoPos
}

func (it *ItemStruct) Room() uint8 { return it.RoomAndFlags & ItemRoomMask }

func (it *ItemStruct) SetRoom(r uint8) {
	it.RoomAndFlags = (it.RoomAndFlags &^ ItemRoomMask) | (r & ItemRoomMask)
}

func (it *ItemStruct) Held() bool     { return it.Flags&ItemFlagHeld != 0 }
func (it *ItemStruct) Poisoned() bool { return it.Flags&ItemFlagPoisoned != 0 }
func (it *ItemStruct) Found() bool    { return it.Flags&ItemFlagFound != 0 }

// ItemDefault is the static default position/room an item returns to on
// discovery.
type ItemDefault struct {
	Room Room
	Pos  Pos8
}

// DefaultItemPositions is the static default table, sized NumItems. These
// are synthesized, plausible outdoor/indoor placements consistent with
// each item's role (see DESIGN.md for the rationale).
var DefaultItemPositions = [NumItems]ItemDefault{
	ItemWiresnips:      {Room: 0, Pos: Pos8{U: 46, V: 46, W: 0}},
	ItemShovel:         {Room: 9, Pos: Pos8{U: 62, V: 48, W: 0}},
	ItemLockpick:       {Room: 21, Pos: Pos8{U: 40, V: 36, W: 0}},
	ItemPapers:         {Room: 20, Pos: Pos8{U: 44, V: 40, W: 0}},
	ItemPurse:          {Room: 0, Pos: Pos8{U: 52, V: 68, W: 0}},
	ItemUniform:        {Room: 12, Pos: Pos8{U: 34, V: 30, W: 0}},
	ItemFoodTin:        {Room: 0, Pos: Pos8{U: 60, V: 40, W: 0}},
	ItemCompass:        {Room: 34, Pos: Pos8{U: 30, V: 30, W: 0}},
	ItemBribe:          {Room: 0, Pos: Pos8{U: 70, V: 50, W: 0}},
	ItemKeySuitcase:    {Room: 46, Pos: Pos8{U: 28, V: 28, W: 0}},
	ItemKeyWarden:      {Room: 1, Pos: Pos8{U: 24, V: 24, W: 0}},
	ItemKeyCrate:       {Room: 9, Pos: Pos8{U: 58, V: 44, W: 0}},
	ItemKeyBox:         {Room: 52, Pos: Pos8{U: 26, V: 26, W: 0}},
	ItemPoison:         {Room: 1, Pos: Pos8{U: 22, V: 22, W: 0}},
	ItemRedCrossParcel: {Room: 1, Pos: Pos8{U: 20, V: 20, W: 0}},
	ItemFlag:           {Room: 0, Pos: Pos8{U: 0, V: 0, W: 0}},
}

// RedCrossParcelCandidates are the items that can regenerate as a
// red-cross parcel's contents.
var RedCrossParcelCandidates = [4]ItemID{ItemPurse, ItemWiresnips, ItemBribe, ItemCompass}
