package types

import (
	"strconv"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeVaultCreated          = "vault_created"
	EventTypeDeposit               = "vault_deposit"
	EventTypeAllocation            = "vault_allocation"
	EventTypeLiquidation           = "vault_liquidation"
	EventTypeRedeem                = "vault_redeem"
	EventTypeExitFeeApplied        = "vault_exit_fee_applied"
	EventTypeManagementFeeAccrued  = "vault_management_fee_accrued"
	EventTypeAllocationsUpdated    = "vault_allocations_updated"
	EventTypeFeesUpdated           = "vault_fees_updated"
	EventTypeFeeReceiverUpdated    = "vault_fee_receiver_updated"
	EventTypeVaultBootstrapped     = "vault_bootstrapped"
	EventTypeVaultPaused           = "vault_paused"
	EventTypeVaultUnpaused         = "vault_unpaused"
	EventTypeAdminGranted          = "vault_admin_granted"
	EventTypeAdminRevoked          = "vault_admin_revoked"
	EventTypeSharesTransferred     = "vault_shares_transferred"
	EventTypeParamsUpdated         = "vault_params_updated"
	AttributeKeyVaultAddress       = "vault_address"
	AttributeKeyOwner              = "owner"
	AttributeKeyTreasury           = "treasury"
	AttributeKeyShareDenom         = "share_denom"
	AttributeKeyUnderlyingAsset    = "underlying_asset"
	AttributeKeySender             = "sender"
	AttributeKeyReceiver           = "receiver"
	AttributeKeyAuthority          = "authority"
	AttributeKeyAccount            = "account"
	AttributeKeyAssets             = "assets"
	AttributeKeyShares             = "shares"
	AttributeKeyFee                = "fee"
	AttributeKeyDenom              = "denom"
	AttributeKeySpent              = "spent"
	AttributeKeyReceived           = "received"
	AttributeKeySold               = "sold"
	AttributeKeyProceeds           = "proceeds"
	AttributeKeyEntries            = "entries"
	AttributeKeyExitFeeBps         = "exit_fee_bps"
	AttributeKeyManagementFeeBps   = "management_fee_bps"
	AttributeKeyFeeReceiver        = "fee_receiver"
	AttributeKeyTimestamp          = "timestamp"
	AttributeKeyMaxAllocations     = "max_allocations"
	AttributeKeyManagementCooldown = "management_fee_cooldown_seconds"
)

// NewEventVaultCreated creates a new vault created event.
func NewEventVaultCreated(vault VaultConfig) sdk.Event {
	return sdk.NewEvent(EventTypeVaultCreated,
		sdk.NewAttribute(AttributeKeyVaultAddress, vault.Address),
		sdk.NewAttribute(AttributeKeyOwner, vault.Owner),
		sdk.NewAttribute(AttributeKeyTreasury, vault.Treasury),
		sdk.NewAttribute(AttributeKeyShareDenom, vault.ShareDenom),
		sdk.NewAttribute(AttributeKeyUnderlyingAsset, vault.UnderlyingAsset),
	)
}

// NewEventDeposit creates a new deposit event.
func NewEventDeposit(vaultAddress, sender, receiver string, assets sdk.Coin, shares math.Int) sdk.Event {
	return sdk.NewEvent(EventTypeDeposit,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeySender, sender),
		sdk.NewAttribute(AttributeKeyReceiver, receiver),
		sdk.NewAttribute(AttributeKeyAssets, assets.String()),
		sdk.NewAttribute(AttributeKeyShares, shares.String()),
	)
}

// NewEventAllocation creates a new allocation event for a single instrument.
// spent is the underlying routed to the instrument, received the instrument amount credited.
func NewEventAllocation(vaultAddress string, spent, received sdk.Coin) sdk.Event {
	return sdk.NewEvent(EventTypeAllocation,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeyDenom, received.Denom),
		sdk.NewAttribute(AttributeKeySpent, spent.String()),
		sdk.NewAttribute(AttributeKeyReceived, received.String()),
	)
}

// NewEventLiquidation creates a new event for an instrument sold to fund a redemption.
func NewEventLiquidation(vaultAddress string, sold, proceeds sdk.Coin) sdk.Event {
	return sdk.NewEvent(EventTypeLiquidation,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeyDenom, sold.Denom),
		sdk.NewAttribute(AttributeKeySold, sold.String()),
		sdk.NewAttribute(AttributeKeyProceeds, proceeds.String()),
	)
}

// NewEventRedeem creates a new redeem event. assets is the net amount paid to the receiver.
func NewEventRedeem(vaultAddress, owner, receiver string, shares math.Int, assets sdk.Coin) sdk.Event {
	return sdk.NewEvent(EventTypeRedeem,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeyOwner, owner),
		sdk.NewAttribute(AttributeKeyReceiver, receiver),
		sdk.NewAttribute(AttributeKeyShares, shares.String()),
		sdk.NewAttribute(AttributeKeyAssets, assets.String()),
	)
}

// NewEventExitFeeApplied creates a new exit fee event.
func NewEventExitFeeApplied(vaultAddress, treasury string, fee sdk.Coin) sdk.Event {
	return sdk.NewEvent(EventTypeExitFeeApplied,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeyTreasury, treasury),
		sdk.NewAttribute(AttributeKeyFee, fee.String()),
	)
}

// NewEventManagementFeeAccrued creates a new management fee accrual event.
func NewEventManagementFeeAccrued(vaultAddress, receiver string, shares math.Int, timestamp int64) sdk.Event {
	return sdk.NewEvent(EventTypeManagementFeeAccrued,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeyReceiver, receiver),
		sdk.NewAttribute(AttributeKeyShares, shares.String()),
		sdk.NewAttribute(AttributeKeyTimestamp, strconv.FormatInt(timestamp, 10)),
	)
}

// NewEventAllocationsUpdated creates a new allocations updated event.
func NewEventAllocationsUpdated(vaultAddress, admin string, entries int) sdk.Event {
	return sdk.NewEvent(EventTypeAllocationsUpdated,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeyAuthority, admin),
		sdk.NewAttribute(AttributeKeyEntries, strconv.Itoa(entries)),
	)
}

// NewEventFeesUpdated creates a new fees updated event.
func NewEventFeesUpdated(vaultAddress, admin string, exitFeeBps, managementFeeBps uint32) sdk.Event {
	return sdk.NewEvent(EventTypeFeesUpdated,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeyAuthority, admin),
		sdk.NewAttribute(AttributeKeyExitFeeBps, strconv.FormatUint(uint64(exitFeeBps), 10)),
		sdk.NewAttribute(AttributeKeyManagementFeeBps, strconv.FormatUint(uint64(managementFeeBps), 10)),
	)
}

// NewEventFeeReceiverUpdated creates a new fee receiver updated event.
func NewEventFeeReceiverUpdated(vaultAddress, owner, feeReceiver string) sdk.Event {
	return sdk.NewEvent(EventTypeFeeReceiverUpdated,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeyAuthority, owner),
		sdk.NewAttribute(AttributeKeyFeeReceiver, feeReceiver),
	)
}

// NewEventVaultBootstrapped creates a new bootstrap event.
func NewEventVaultBootstrapped(vaultAddress, treasury string, seed sdk.Coin, shares math.Int) sdk.Event {
	return sdk.NewEvent(EventTypeVaultBootstrapped,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeyTreasury, treasury),
		sdk.NewAttribute(AttributeKeyAssets, seed.String()),
		sdk.NewAttribute(AttributeKeyShares, shares.String()),
	)
}

// NewEventVaultPaused creates a new paused event.
func NewEventVaultPaused(vaultAddress, authority string) sdk.Event {
	return sdk.NewEvent(EventTypeVaultPaused,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeyAuthority, authority),
	)
}

// NewEventVaultUnpaused creates a new unpaused event.
func NewEventVaultUnpaused(vaultAddress, authority string) sdk.Event {
	return sdk.NewEvent(EventTypeVaultUnpaused,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeyAuthority, authority),
	)
}

// NewEventAdminGranted creates a new admin granted event.
func NewEventAdminGranted(vaultAddress, owner, account string) sdk.Event {
	return sdk.NewEvent(EventTypeAdminGranted,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeyAuthority, owner),
		sdk.NewAttribute(AttributeKeyAccount, account),
	)
}

// NewEventAdminRevoked creates a new admin revoked event.
func NewEventAdminRevoked(vaultAddress, owner, account string) sdk.Event {
	return sdk.NewEvent(EventTypeAdminRevoked,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeyAuthority, owner),
		sdk.NewAttribute(AttributeKeyAccount, account),
	)
}

// NewEventSharesTransferred creates a new share transfer event.
func NewEventSharesTransferred(vaultAddress, sender, receiver string, shares math.Int) sdk.Event {
	return sdk.NewEvent(EventTypeSharesTransferred,
		sdk.NewAttribute(AttributeKeyVaultAddress, vaultAddress),
		sdk.NewAttribute(AttributeKeySender, sender),
		sdk.NewAttribute(AttributeKeyReceiver, receiver),
		sdk.NewAttribute(AttributeKeyShares, shares.String()),
	)
}

// NewEventParamsUpdated creates a new params updated event.
func NewEventParamsUpdated(authority string, params Params) sdk.Event {
	return sdk.NewEvent(EventTypeParamsUpdated,
		sdk.NewAttribute(AttributeKeyAuthority, authority),
		sdk.NewAttribute(AttributeKeyMaxAllocations, strconv.FormatUint(uint64(params.MaxAllocations), 10)),
		sdk.NewAttribute(AttributeKeyManagementCooldown, strconv.FormatInt(params.ManagementFeeCooldownSeconds, 10)),
	)
}
