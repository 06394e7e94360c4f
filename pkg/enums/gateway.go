package enums

// Gateway identifies the payment processor an order is forwarded to.
type Gateway string

const (
	GatewaySafepay   Gateway = "safepay"
	GatewayJazzCash  Gateway = "jazzcash"
	GatewayEasyPaisa Gateway = "easypaisa"
	GatewayCOD       Gateway = "cod"
)

var validGateways = []Gateway{
	GatewaySafepay,
	GatewayJazzCash,
	GatewayEasyPaisa,
	GatewayCOD,
}

var gatewayLabels = map[Gateway]string{
	GatewaySafepay:   "Safepay",
	GatewayJazzCash:  "JazzCash",
	GatewayEasyPaisa: "EasyPaisa",
	GatewayCOD:       "Order",
}

// String implements fmt.Stringer.
func (g Gateway) String() string {
	return string(g)
}

// Label is the display name used in shopper-facing messages.
func (g Gateway) Label() string {
	if label, ok := gatewayLabels[g]; ok {
		return label
	}
	return string(g)
}

// IsValid reports whether the value is a known Gateway.
func (g Gateway) IsValid() bool {
	for _, candidate := range validGateways {
		if candidate == g {
			return true
		}
	}
	return false
}
