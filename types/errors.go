package types

import "cosmossdk.io/errors"

var (
	ErrInvalidRequest              = errors.Register(ModuleName, 2, "invalid request")
	ErrZeroAddress                 = errors.Register(ModuleName, 3, "zero address")
	ErrInvalidAmount               = errors.Register(ModuleName, 4, "invalid amount")
	ErrTokenNotRegistered          = errors.Register(ModuleName, 5, "token not registered")
	ErrInvalidWeightSum            = errors.Register(ModuleName, 6, "allocation weights must sum to 1e18")
	ErrPriceNotSet                 = errors.Register(ModuleName, 7, "price not set")
	ErrVaultAlreadyBootstrapped    = errors.Register(ModuleName, 8, "vault already bootstrapped")
	ErrManagementFeeCooldownNotMet = errors.Register(ModuleName, 9, "management fee cooldown not met")
	ErrManagementFeeNotConfigured  = errors.Register(ModuleName, 10, "management fee not configured")
	ErrUnauthorized                = errors.Register(ModuleName, 11, "caller lacks required role")
	ErrPaused                      = errors.Register(ModuleName, 12, "vault is paused")
	ErrNativeNotAccepted           = errors.Register(ModuleName, 13, "native currency transfers are not accepted")
	ErrAllocationsEmpty            = errors.Register(ModuleName, 14, "allocations cannot be empty")
	ErrTooManyAllocations          = errors.Register(ModuleName, 15, "too many allocations")
	ErrDuplicateAllocation         = errors.Register(ModuleName, 16, "duplicate allocation token")
	ErrInvalidWeight               = errors.Register(ModuleName, 17, "invalid allocation weight")
	ErrFeeTooHigh                  = errors.Register(ModuleName, 18, "fee exceeds maximum")
	ErrWithdrawNotSupported        = errors.Register(ModuleName, 19, "withdraw is not supported, use redeem")
	ErrInsufficientShares          = errors.Register(ModuleName, 20, "insufficient shares")
	ErrInsufficientHoldings        = errors.Register(ModuleName, 21, "insufficient vault holdings")
	ErrReentrantCall               = errors.Register(ModuleName, 22, "reentrant call")
	ErrVaultNotFound               = errors.Register(ModuleName, 23, "vault not found")
	ErrUnsupportedDecimals         = errors.Register(ModuleName, 24, "unsupported decimals")
	ErrInvalidDenom                = errors.Register(ModuleName, 25, "invalid denom")
	ErrVaultExists                 = errors.Register(ModuleName, 26, "vault already exists")
	ErrNotPaused                   = errors.Register(ModuleName, 27, "vault is not paused")
	ErrInvalidParams               = errors.Register(ModuleName, 28, "invalid params")
)
