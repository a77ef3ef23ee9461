package evm

const (
	ETHEREUM_DOMAIN  uint32 = 0
	AVALANCHE_DOMAIN uint32 = 1
	OPTIMISM_DOMAIN  uint32 = 2
	ARBITRUM_DOMAIN  uint32 = 3
	BASE_DOMAIN      uint32 = 6

	MAINNET_CONTRACT = "0x2967e7bb9daa5711ac332caf874bd47ef99b3820"
)

var mainnetContracts = map[uint32]string{
	BASE_DOMAIN: "0xfDa613cb7366b1812F2d33fC95D1d4DD3896aeb8",
}

var mainnetTransmitters = map[uint32]string{
	ETHEREUM_DOMAIN:  "0x0a992d191deec32afe36203ad87d7d289a738f81",
	AVALANCHE_DOMAIN: "0x8186359af5f57fbb40c6b14a588d2a59c0c29880",
	OPTIMISM_DOMAIN:  "0x4d41f22c5a0e5c74090899e5a8fb597a8842b3e8",
	ARBITRUM_DOMAIN:  "0xC30362313FBBA5cf9163F0bb16a0e01f01A896ca",
	BASE_DOMAIN:      "0xAD09780d193884d503182aD4588450C416D6F9D4",
}

var mainnetFixedGas = map[uint32]*RawFixedGasConfig{
	OPTIMISM_DOMAIN: {
		BaseGas:        1880000,
		GasPrice:       150000000,
		AllowDeviation: 0.97,
	},
}

var testnetContracts = map[uint32]string{
	AVALANCHE_DOMAIN: "0x7969921f69c612C3D93D0cea133a571ff84753D3",
	ARBITRUM_DOMAIN:  "0x4AF9bE5A3464aFDEFc80700b41fcC4d9713E7449",
}
