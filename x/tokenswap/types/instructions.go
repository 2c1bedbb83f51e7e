package types

import (
	"encoding/binary"

	"cosmossdk.io/math"
)

// Opcode tags a wire instruction.
type Opcode uint8

const (
	OpCreatePool Opcode = iota
	OpSwap
	OpDepositAllTokenTypes
	OpWithdrawAllTokenTypes
	OpDepositSingleTokenType
	OpWithdrawSingleTokenType
	OpRoutedSwap
)

// instructionSchema fixes the payload shape per opcode: an optional leading
// curve type byte followed by a fixed count of little-endian u64 fields.
type instructionSchema struct {
	fields       int
	hasCurveType bool
}

var instructionSchemas = map[Opcode]instructionSchema{
	// curve parameters (2) + fee schedule numerator/denominator pairs (8)
	OpCreatePool:              {fields: 10, hasCurveType: true},
	OpSwap:                    {fields: 2},
	OpDepositAllTokenTypes:    {fields: 3},
	OpWithdrawAllTokenTypes:   {fields: 3},
	OpDepositSingleTokenType:  {fields: 2},
	OpWithdrawSingleTokenType: {fields: 2},
	OpRoutedSwap:              {fields: 2},
}

// Instruction is one decoded wire instruction. Account references (sender,
// pool, token denoms) travel out of band and are supplied by the caller when
// converting to a message.
type Instruction struct {
	Opcode    Opcode
	CurveType uint8
	Fields    []uint64
}

// Encode serializes the instruction to its fixed binary layout.
func (i Instruction) Encode() ([]byte, error) {
	schema, ok := instructionSchemas[i.Opcode]
	if !ok {
		return nil, ErrInvalidInstruction.Wrapf("unknown opcode %d", i.Opcode)
	}
	if len(i.Fields) != schema.fields {
		return nil, ErrInvalidInstruction.Wrapf(
			"opcode %d wants %d fields, got %d", i.Opcode, schema.fields, len(i.Fields))
	}

	size := 1 + 8*schema.fields
	if schema.hasCurveType {
		size++
	}
	buf := make([]byte, 0, size)
	buf = append(buf, byte(i.Opcode))
	if schema.hasCurveType {
		buf = append(buf, i.CurveType)
	}
	for _, f := range i.Fields {
		buf = binary.LittleEndian.AppendUint64(buf, f)
	}
	return buf, nil
}

// DecodeInstruction parses a wire payload. The payload length must match the
// opcode's schema exactly.
func DecodeInstruction(data []byte) (Instruction, error) {
	if len(data) == 0 {
		return Instruction{}, ErrInvalidInstruction.Wrap("empty instruction")
	}
	opcode := Opcode(data[0])
	schema, ok := instructionSchemas[opcode]
	if !ok {
		return Instruction{}, ErrInvalidInstruction.Wrapf("unknown opcode %d", opcode)
	}

	body := data[1:]
	inst := Instruction{Opcode: opcode}
	if schema.hasCurveType {
		if len(body) == 0 {
			return Instruction{}, ErrInvalidInstruction.Wrap("truncated instruction")
		}
		inst.CurveType = body[0]
		body = body[1:]
	}
	if len(body) != 8*schema.fields {
		return Instruction{}, ErrInvalidInstruction.Wrapf(
			"opcode %d wants %d payload bytes, got %d", opcode, 8*schema.fields, len(body))
	}
	inst.Fields = make([]uint64, schema.fields)
	for n := range inst.Fields {
		inst.Fields[n] = binary.LittleEndian.Uint64(body[8*n:])
	}
	return inst, nil
}

// InstructionAccounts supplies the out-of-band account references an
// instruction needs to become an executable message.
type InstructionAccounts struct {
	Sender         string
	PoolID         uint64
	RoutePoolIDs   []uint64
	TokenA         string
	TokenB         string
	TokenIn        string
	TokenOut       string
	FeeAccount     string
	HostFeeAccount string
}

// ToMsg converts a decoded instruction plus its account references into the
// corresponding sdk message. The message still goes through ValidateBasic.
func (i Instruction) ToMsg(accounts InstructionAccounts) (interface{ ValidateBasic() error }, error) {
	u := func(n int) math.Int { return math.NewIntFromUint64(i.Fields[n]) }

	switch i.Opcode {
	case OpCreatePool:
		curveType, err := CurveTypeFromByte(i.CurveType)
		if err != nil {
			return nil, err
		}
		curve := SwapCurve{
			CurveType: curveType,
			Parameters: CurveParameters{
				TokenBPrice:  i.Fields[0],
				TokenBOffset: i.Fields[1],
			},
		}
		fees := FeeSchedule{
			TradeFeeNumerator:           i.Fields[2],
			TradeFeeDenominator:         i.Fields[3],
			OwnerTradeFeeNumerator:      i.Fields[4],
			OwnerTradeFeeDenominator:    i.Fields[5],
			OwnerWithdrawFeeNumerator:   i.Fields[6],
			OwnerWithdrawFeeDenominator: i.Fields[7],
			HostFeeNumerator:            i.Fields[8],
			HostFeeDenominator:          i.Fields[9],
		}
		// initial deposits are not part of the wire layout; callers set them
		msg := NewMsgCreatePool(accounts.Sender, accounts.TokenA, accounts.TokenB,
			math.OneInt(), math.OneInt(), curve, fees, accounts.FeeAccount)
		return msg, nil

	case OpSwap:
		return NewMsgSwap(accounts.Sender, accounts.PoolID, accounts.TokenIn, u(0), u(1), accounts.HostFeeAccount), nil

	case OpDepositAllTokenTypes:
		return NewMsgDepositAllTokenTypes(accounts.Sender, accounts.PoolID, u(0), u(1), u(2)), nil

	case OpWithdrawAllTokenTypes:
		return NewMsgWithdrawAllTokenTypes(accounts.Sender, accounts.PoolID, u(0), u(1), u(2)), nil

	case OpDepositSingleTokenType:
		return NewMsgDepositSingleTokenType(accounts.Sender, accounts.PoolID, accounts.TokenIn, u(0), u(1)), nil

	case OpWithdrawSingleTokenType:
		return NewMsgWithdrawSingleTokenType(accounts.Sender, accounts.PoolID, accounts.TokenOut, u(0), u(1)), nil

	case OpRoutedSwap:
		return NewMsgRoutedSwap(accounts.Sender, accounts.RoutePoolIDs, accounts.TokenIn, u(0), u(1), accounts.HostFeeAccount), nil

	default:
		return nil, ErrInvalidInstruction.Wrapf("unknown opcode %d", i.Opcode)
	}
}
