package fees

import (
	"fmt"

	"cosmossdk.io/math"

	"github.com/provlabs/rwavault/types"
	"github.com/provlabs/rwavault/utils"
)

const (
	SecondsPerHour = 3_600
	SecondsPerDay  = 24 * SecondsPerHour
	SecondsPerYear = 365 * SecondsPerDay
)

var bpsDenominator = math.NewInt(types.BpsDenominator)

// CalculateExitFee splits a redemption's gross assets into the exit fee owed
// to the treasury and the net amount paid to the receiver:
//
//	fee = floor( gross * exitFeeBps / 10_000 )
//	net = gross - fee
//
// A zero exitFeeBps returns a zero fee and the full gross as net.
func CalculateExitFee(gross math.Int, exitFeeBps uint32) (fee, net math.Int, err error) {
	if gross.IsNegative() {
		return math.Int{}, math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if exitFeeBps > types.BpsDenominator {
		return math.Int{}, math.Int{}, fmt.Errorf("exit fee %d bps exceeds 100%%", exitFeeBps)
	}
	if exitFeeBps == 0 {
		return math.ZeroInt(), gross, nil
	}
	fee, err = utils.MulDivFloor(gross, math.NewIntFromUint64(uint64(exitFeeBps)), bpsDenominator)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return fee, gross.Sub(fee), nil
}

// CalculateManagementFee returns the shares owed for one management period:
//
//	fee = floor( totalSupply * managementFeeBps / 10_000 )
//
// It returns zero when either the fee or the supply is zero.
func CalculateManagementFee(totalSupply math.Int, managementFeeBps uint32) (math.Int, error) {
	if totalSupply.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if managementFeeBps == 0 || totalSupply.IsZero() {
		return math.ZeroInt(), nil
	}
	return utils.MulDivFloor(totalSupply, math.NewIntFromUint64(uint64(managementFeeBps)), bpsDenominator)
}

// CooldownElapsed reports whether at least cooldownSeconds have passed
// between lastAccrual and now. A clock that moved backwards never satisfies it.
func CooldownElapsed(lastAccrual, now, cooldownSeconds int64) bool {
	if now < lastAccrual {
		return false
	}
	return now-lastAccrual >= cooldownSeconds
}

// NextAccrualTime returns the earliest unix time at which the next management
// fee accrual is allowed.
func NextAccrualTime(lastAccrual, cooldownSeconds int64) int64 {
	return lastAccrual + cooldownSeconds
}
