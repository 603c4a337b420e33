package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	ctx.Locals("user_id", claims["user_id"])
	ctx.Locals("email", claims["email"])
	ctx.Locals("role", claims["role"])
	return ctx.Next()
}

// DoctorOnly gates the doctor dashboard routes. Runs after JwtMiddleware.
func DoctorOnly(ctx *fiber.Ctx) error {
	if role, _ := ctx.Locals("role").(string); role != "medecin" {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Doctor access required"})
	}
	return ctx.Next()
}

// UserEmail extracts the authenticated email set by JwtMiddleware.
func UserEmail(ctx *fiber.Ctx) string {
	email, _ := ctx.Locals("email").(string)
	return email
}
