package vnpay

// ResponseCodeSuccess is the gateway code for a completed payment. Every
// other code leaves the order unsettled.
const ResponseCodeSuccess = "00"

var responseCodeMessages = map[string]string{
	"00": "Giao dịch thành công",
	"07": "Trừ tiền thành công. Giao dịch bị nghi ngờ (liên quan tới lừa đảo, giao dịch bất thường)",
	"09": "Thẻ/Tài khoản chưa đăng ký dịch vụ InternetBanking tại ngân hàng",
	"10": "Xác thực thông tin thẻ/tài khoản không đúng quá 3 lần",
	"11": "Đã hết hạn chờ thanh toán. Xin vui lòng thực hiện lại giao dịch",
	"12": "Thẻ/Tài khoản bị khóa",
	"13": "Nhập sai mật khẩu xác thực giao dịch (OTP). Xin vui lòng thực hiện lại giao dịch",
	"24": "Khách hàng hủy giao dịch",
	"51": "Tài khoản không đủ số dư để thực hiện giao dịch",
	"65": "Tài khoản đã vượt quá hạn mức giao dịch trong ngày",
	"75": "Ngân hàng thanh toán đang bảo trì",
	"79": "Nhập sai mật khẩu thanh toán quá số lần quy định. Xin vui lòng thực hiện lại giao dịch",
	"99": "Lỗi không xác định",
}

// ResponseCodeMessage returns the human-readable description for a gateway
// response code, falling back to the unknown-error message.
func ResponseCodeMessage(code string) string {
	if msg, ok := responseCodeMessages[code]; ok {
		return msg
	}
	return responseCodeMessages["99"]
}
