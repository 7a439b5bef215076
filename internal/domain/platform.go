package domain

// Known platform identifiers as emitted by the upstream normalization layer.
const (
	PlatformShopee     = "shopee"
	PlatformLazada     = "lazada"
	PlatformTikTokShop = "tiktok_shop"

	PlatformFacebookAds = "facebook"
	PlatformGoogleAds   = "google"
	PlatformTikTokAds   = "tiktok_ads"
	PlatformLineAds     = "line"
	PlatformShopeeAds   = "shopee_ads"
	PlatformLazadaAds   = "lazada_ads"
)

// PlatformAll is the synthetic e-commerce bucket spend from cross-platform ad
// networks is attributed to. Facebook or Google spend cannot be tied to a
// single shop platform, so it is benchmarked against total net revenue under
// this bucket instead of being double-counted into every platform.
const PlatformAll = "all"

// adToEcommerce maps an ad platform to the e-commerce platform whose revenue
// its spend is attributed against.
var adToEcommerce = map[string]string{
	PlatformFacebookAds: PlatformAll,
	PlatformGoogleAds:   PlatformAll,
	PlatformLineAds:     PlatformAll,
	PlatformTikTokAds:   PlatformTikTokShop,
	PlatformShopeeAds:   PlatformShopee,
	PlatformLazadaAds:   PlatformLazada,
}

// EcommercePlatformFor resolves the revenue-attribution platform for an ad
// platform. Unknown ad platforms fall back to the all bucket rather than being
// dropped.
func EcommercePlatformFor(adPlatform string) string {
	if p, ok := adToEcommerce[adPlatform]; ok {
		return p
	}
	return PlatformAll
}

// EcommercePlatforms lists the shop platforms contributing to the all bucket.
func EcommercePlatforms() []string {
	return []string{PlatformShopee, PlatformLazada, PlatformTikTokShop}
}
