package integer

// U8 is a uint8 implementing Power10.
type U8 uint8

// U16 is a uint16 implementing Power10.
type U16 uint16

// U32 is a uint32 implementing Power10.
type U32 uint32

// U64 is a uint64 implementing Power10.
type U64 uint64

// Uint is a uint implementing Power10. It uses the 32 or 64 bit tables
// depending on the platform.
type Uint uint

// Uintptr is a uintptr implementing Power10.
type Uintptr uintptr

var (
	_ Power10[U8]      = U8(0)
	_ Power10[U16]     = U16(0)
	_ Power10[U32]     = U32(0)
	_ Power10[U64]     = U64(0)
	_ Power10[Uint]    = Uint(0)
	_ Power10[Uintptr] = Uintptr(0)
)

func (v U8) IsPowerOfTen() bool                { return IsPow10(v) }
func (v U8) FloorLog10() uint32                { return Log10(v) }
func (v U8) CheckedFloorLog10() (uint32, bool) { return CheckedLog10(v) }
func (v U8) WrappingNextPowerOfTen() U8        { return WrappingNextPow10(v) }
func (v U8) CheckedNextPowerOfTen() (U8, bool) { return CheckedNextPow10(v) }
func (v U8) NextPowerOfTen() U8                { return NextPow10(v) }

func (v U16) IsPowerOfTen() bool                 { return IsPow10(v) }
func (v U16) FloorLog10() uint32                 { return Log10(v) }
func (v U16) CheckedFloorLog10() (uint32, bool)  { return CheckedLog10(v) }
func (v U16) WrappingNextPowerOfTen() U16        { return WrappingNextPow10(v) }
func (v U16) CheckedNextPowerOfTen() (U16, bool) { return CheckedNextPow10(v) }
func (v U16) NextPowerOfTen() U16                { return NextPow10(v) }

func (v U32) IsPowerOfTen() bool                 { return IsPow10(v) }
func (v U32) FloorLog10() uint32                 { return Log10(v) }
func (v U32) CheckedFloorLog10() (uint32, bool)  { return CheckedLog10(v) }
func (v U32) WrappingNextPowerOfTen() U32        { return WrappingNextPow10(v) }
func (v U32) CheckedNextPowerOfTen() (U32, bool) { return CheckedNextPow10(v) }
func (v U32) NextPowerOfTen() U32                { return NextPow10(v) }

func (v U64) IsPowerOfTen() bool                 { return IsPow10(v) }
func (v U64) FloorLog10() uint32                 { return Log10(v) }
func (v U64) CheckedFloorLog10() (uint32, bool)  { return CheckedLog10(v) }
func (v U64) WrappingNextPowerOfTen() U64        { return WrappingNextPow10(v) }
func (v U64) CheckedNextPowerOfTen() (U64, bool) { return CheckedNextPow10(v) }
func (v U64) NextPowerOfTen() U64                { return NextPow10(v) }

func (v Uint) IsPowerOfTen() bool                  { return IsPow10(v) }
func (v Uint) FloorLog10() uint32                  { return Log10(v) }
func (v Uint) CheckedFloorLog10() (uint32, bool)   { return CheckedLog10(v) }
func (v Uint) WrappingNextPowerOfTen() Uint        { return WrappingNextPow10(v) }
func (v Uint) CheckedNextPowerOfTen() (Uint, bool) { return CheckedNextPow10(v) }
func (v Uint) NextPowerOfTen() Uint                { return NextPow10(v) }

func (v Uintptr) IsPowerOfTen() bool                     { return IsPow10(v) }
func (v Uintptr) FloorLog10() uint32                     { return Log10(v) }
func (v Uintptr) CheckedFloorLog10() (uint32, bool)      { return CheckedLog10(v) }
func (v Uintptr) WrappingNextPowerOfTen() Uintptr        { return WrappingNextPow10(v) }
func (v Uintptr) CheckedNextPowerOfTen() (Uintptr, bool) { return CheckedNextPow10(v) }
func (v Uintptr) NextPowerOfTen() Uintptr                { return NextPow10(v) }
