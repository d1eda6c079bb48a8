package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workling/portal/internal/forms"
)

var registerForm forms.RegisterForm

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a marketplace account",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCLI(cmd.Context())
		if err != nil {
			return err
		}

		// Required fields are checked here, before any network traffic.
		in, err := registerForm.Parse()
		if err != nil {
			return err
		}

		if err := c.gw.Register(cmd.Context(), in); err != nil {
			return err
		}
		fmt.Println("Registration successful! Log in with: workling login")
		return nil
	},
}

var loginEmail, loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCLI(cmd.Context())
		if err != nil {
			return err
		}
		if loginEmail == "" || loginPassword == "" {
			return fmt.Errorf("email and password are required")
		}

		token, user, err := c.gw.Login(cmd.Context(), loginEmail, loginPassword)
		if err != nil {
			return err
		}
		if err := c.sess.Login(cmd.Context(), token, user); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the persisted session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCLI(cmd.Context())
		if err != nil {
			return err
		}
		if err := c.sess.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerForm.Name, "name", "", "full name")
	registerCmd.Flags().StringVar(&registerForm.Email, "email", "", "email address")
	registerCmd.Flags().StringVar(&registerForm.Password, "password", "", "password")
	registerCmd.Flags().StringVar(&registerForm.Role, "role", "employer", "account role: worker or employer")
	registerCmd.Flags().StringVar(&registerForm.Price, "price", "", "hourly rate (workers only)")
	registerCmd.Flags().StringVar(&registerForm.Skills, "skills", "", "comma-separated skills (workers only)")
	registerCmd.Flags().StringVar(&registerForm.Certificates, "certificates", "", "comma-separated certificates (workers only)")

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
