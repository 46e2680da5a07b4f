package branch

// UnknownBranch は未登録デバイスからのイベントが着地する番兵ブランチ名です。
// 解決失敗でイベントを落とさず、後から調査できるようにします。
const UnknownBranch = "Unknown_Branch"

// Branch は入退室デバイスと物理拠点を対応付けるエンティティです。
// DeviceIP が一意なデバイス識別キー、DeviceSerial はレガシーな予備キーです。
type Branch struct {
	BranchName   string
	DeviceIP     string
	DeviceSerial int64
}
