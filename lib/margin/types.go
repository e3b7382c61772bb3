package margin

type SpotBalanceType uint8

const (
	SpotBalanceType_Deposit SpotBalanceType = iota
	SpotBalanceType_Borrow
)

func (t SpotBalanceType) String() string {
	switch t {
	case SpotBalanceType_Deposit:
		return "Deposit"
	case SpotBalanceType_Borrow:
		return "Borrow"
	}
	return "Unknown"
}

type MarginRequirementType uint8

const (
	MarginRequirementType_Initial MarginRequirementType = iota
	MarginRequirementType_Maintenance
)

func (t MarginRequirementType) String() string {
	switch t {
	case MarginRequirementType_Initial:
		return "Initial"
	case MarginRequirementType_Maintenance:
		return "Maintenance"
	}
	return "Unknown"
}
